package strategy

import (
	"sort"
	"strings"
	"sync"

	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/openapi"
	"github.com/francbartoli/ogcapi-registry/validation"
)

// Registry holds one strategy per OGC API family and selects the best one
// for a set of declared conformance classes.
//
// A Registry is safe for concurrent selection and validation but not for
// concurrent Register; register all strategies before sharing it.
type Registry struct {
	strategies map[conformance.Family]Strategy
	order      []conformance.Family
}

// NewRegistry returns a registry populated with the built-in strategies
// for every known family.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[conformance.Family]Strategy)}
	r.Register(NewCommonStrategy())
	r.Register(NewFeaturesStrategy())
	r.Register(NewTilesStrategy())
	r.Register(NewProcessesStrategy())
	r.Register(NewRecordsStrategy())
	r.Register(NewCoveragesStrategy())
	r.Register(NewEDRStrategy())
	r.Register(NewMapsStrategy())
	r.Register(NewStylesStrategy())
	r.Register(NewRoutesStrategy())
	return r
}

// NewEmptyRegistry returns a registry with no strategies. Selection on an
// empty registry falls back to a fresh common strategy.
func NewEmptyRegistry() *Registry {
	return &Registry{strategies: make(map[conformance.Family]Strategy)}
}

// Register adds a strategy, replacing any existing one for the same family.
// Registration order is the tie-break for equal selection scores.
func (r *Registry) Register(s Strategy) {
	family := s.Family()
	if _, exists := r.strategies[family]; !exists {
		r.order = append(r.order, family)
	}
	r.strategies[family] = s
}

// Get returns the strategy registered for a family.
func (r *Registry) Get(family conformance.Family) (Strategy, bool) {
	s, ok := r.strategies[family]
	return s, ok
}

// Strategies returns all registered strategies in registration order.
func (r *Registry) Strategies() []Strategy {
	out := make([]Strategy, 0, len(r.order))
	for _, family := range r.order {
		out = append(out, r.strategies[family])
	}
	return out
}

// Families returns all registered families in registration order.
func (r *Registry) Families() []conformance.Family {
	out := make([]conformance.Family, len(r.order))
	copy(out, r.order)
	return out
}

// ForConformance selects the best strategy for the declared classes.
// When several strategies match, the generic common strategy is dropped in
// favor of the specific ones and the survivors combine into a Composite.
// When nothing matches, the common strategy is the fallback.
func (r *Registry) ForConformance(classes []conformance.Class) Strategy {
	type scored struct {
		score    int
		strategy Strategy
	}
	var matches []scored
	for _, s := range r.Strategies() {
		if s.Matches(classes) {
			matches = append(matches, scored{score: s.Score(classes), strategy: s})
		}
	}

	if len(matches) == 0 {
		if common, ok := r.Get(conformance.FamilyCommon); ok {
			return common
		}
		return NewCommonStrategy()
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) == 1 {
		return matches[0].strategy
	}

	var specific []Strategy
	for _, m := range matches {
		if m.strategy.Family() != conformance.FamilyCommon {
			specific = append(specific, m.strategy)
		}
	}
	if len(specific) == 0 {
		return matches[0].strategy
	}
	if len(specific) == 1 {
		return specific[0]
	}
	return NewComposite(specific...)
}

// DetectAndValidate normalizes the conformance argument, selects a
// strategy, and validates the document.
//
// The conformance argument may be a []conformance.Class, a []string or
// []any of URIs, a map with a "conformsTo" member, or nil. When nil, the
// document's own x-conformance / x-conformsTo hints are used; when those
// are absent too, plausible classes are inferred from the shape of the
// document's path set. Inference is best-effort and never overrides
// explicitly supplied classes.
func (r *Registry) DetectAndValidate(doc openapi.Document, conformanceArg any) *validation.Result {
	classes := r.normalizeClasses(doc, conformanceArg)
	return r.ForConformance(classes).Validate(doc, classes)
}

func (r *Registry) normalizeClasses(doc openapi.Document, arg any) []conformance.Class {
	switch v := arg.(type) {
	case nil:
		if hints := doc.ConformanceHints(); len(hints) > 0 {
			return conformance.ParseClasses(hints)
		}
		return InferConformance(doc)
	case []conformance.Class:
		return v
	default:
		return conformance.ParseClasses(arg)
	}
}

// InferConformance guesses conformance classes from the document's path
// shapes when no explicit declaration is available.
func InferConformance(doc openapi.Document) []conformance.Class {
	paths := doc.Paths()
	has := func(path string) bool {
		_, ok := paths[path]
		return ok
	}
	anyContains := func(substrings ...string) bool {
		for path := range paths {
			for _, sub := range substrings {
				if strings.Contains(path, sub) {
					return true
				}
			}
		}
		return false
	}

	var uris []string
	if has("/") && has("/conformance") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core")
	}

	hasCollections := has("/collections")
	if hasCollections && anyContains("/items") {
		hasFeatureID := anyContains("featureId")
		hasRecordID := anyContains("recordId")
		if hasFeatureID || !hasRecordID {
			uris = append(uris, "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core")
		}
		if hasRecordID {
			uris = append(uris, "http://www.opengis.net/spec/ogcapi-records-1/1.0/conf/core")
		}
	}
	if anyContains("/tiles") && anyContains("tileMatrix") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-tiles-1/1.0/conf/core")
	}
	if has("/processes") && anyContains("/execution") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-processes-1/1.0/conf/core")
	}
	if hasCollections && anyContains("/map") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-maps-1/1.0/conf/core")
	}
	if hasCollections && anyContains("/coverage") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-coverages-1/1.0/conf/core")
	}
	if hasCollections && anyContains("position", "area", "cube", "trajectory", "corridor") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-edr-1/1.0/conf/core")
	}
	if has("/styles") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-styles-1/1.0/conf/core")
	}
	if has("/routes") {
		uris = append(uris, "http://www.opengis.net/spec/ogcapi-routes-1/1.0/conf/core")
	}

	return conformance.ParseClasses(uris)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry with the built-in
// strategies, created on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Validate validates a document using the default registry. See
// Registry.DetectAndValidate for the accepted conformance shapes.
func Validate(doc openapi.Document, conformanceArg any) *validation.Result {
	return DefaultRegistry().DetectAndValidate(doc, conformanceArg)
}
