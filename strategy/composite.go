package strategy

import (
	"sort"
	"strings"

	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/openapi"
	"github.com/francbartoli/ogcapi-registry/validation"
)

// Composite combines several strategies so a document declaring conformance
// to multiple families is validated against the union of their
// requirements. Sub-strategies run in declaration order and their findings
// are concatenated.
type Composite struct {
	strategies []Strategy
}

// NewComposite builds a composite over the given strategies.
func NewComposite(strategies ...Strategy) *Composite {
	return &Composite{strategies: strategies}
}

// Strategies returns the sub-strategies in declaration order.
func (c *Composite) Strategies() []Strategy {
	out := make([]Strategy, len(c.strategies))
	copy(out, c.strategies)
	return out
}

// Family implements Strategy. A composite spans families, so it reports
// the generic common family.
func (c *Composite) Family() conformance.Family { return conformance.FamilyCommon }

// Matches implements Strategy. True iff any sub-strategy matches.
func (c *Composite) Matches(classes []conformance.Class) bool {
	for _, s := range c.strategies {
		if s.Matches(classes) {
			return true
		}
	}
	return false
}

// Score implements Strategy.
func (c *Composite) Score(classes []conformance.Class) int {
	score := 0
	for _, s := range c.strategies {
		score += s.Score(classes)
	}
	return score
}

// RequiredPaths implements Strategy. The union of all sub-strategy paths.
func (c *Composite) RequiredPaths(classes []conformance.Class) []string {
	seen := make(map[string]bool)
	for _, s := range c.strategies {
		for _, path := range s.RequiredPaths(classes) {
			seen[path] = true
		}
	}
	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// RequiredOperations implements Strategy. Methods per path are unioned and
// deduplicated.
func (c *Composite) RequiredOperations(classes []conformance.Class) map[string][]string {
	merged := make(map[string]map[string]bool)
	for _, s := range c.strategies {
		for path, methods := range s.RequiredOperations(classes) {
			if merged[path] == nil {
				merged[path] = make(map[string]bool)
			}
			for _, m := range methods {
				merged[path][m] = true
			}
		}
	}
	out := make(map[string][]string, len(merged))
	for path, methods := range merged {
		list := make([]string, 0, len(methods))
		for m := range methods {
			list = append(list, m)
		}
		sort.Strings(list)
		out[path] = list
	}
	return out
}

// Validate implements Strategy. Every sub-strategy validates independently
// and the results merge; the composite fails iff any sub-result carries
// findings.
func (c *Composite) Validate(doc openapi.Document, classes []conformance.Class) *validation.Result {
	labels := make([]string, 0, len(c.strategies))
	result := validation.Success("")
	for _, s := range c.strategies {
		sub := s.Validate(doc, classes)
		result.Merge(sub)
		if sub.ValidatedAgainst != "" {
			labels = append(labels, sub.ValidatedAgainst)
		}
	}
	result.ValidatedAgainst = strings.Join(labels, " + ")
	return result
}
