package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/internal/findings"
	"github.com/francbartoli/ogcapi-registry/internal/severity"
	"github.com/francbartoli/ogcapi-registry/openapi"
	"github.com/francbartoli/ogcapi-registry/validation"
)

// conditional unlocks additional requirements when a declared conformance
// class URI contains its pattern.
type conditional struct {
	pattern    string
	paths      []string
	operations map[string][]string
}

// paramCheck describes query parameters an operation should declare when a
// conformance class of this profile's family matching pattern is declared.
// Advisory checks produce info-level entries in the warnings collection;
// the rest produce warning findings. Neither severity blocks compliance.
type paramCheck struct {
	pattern  string
	path     string
	method   string
	params   []string
	advisory bool
}

// Profile is a table-driven Strategy implementation shared by all built-in
// family constructors.
type Profile struct {
	family           conformance.Family
	requiredPatterns []string
	optionalPatterns []string
	basePaths        []string
	baseOperations   map[string][]string
	conditionals     []conditional
	paramChecks      []paramCheck
}

// Family implements Strategy.
func (p *Profile) Family() conformance.Family { return p.family }

// Matches implements Strategy. True iff at least one required pattern is a
// case-insensitive substring of at least one declared class URI.
func (p *Profile) Matches(classes []conformance.Class) bool {
	if len(p.requiredPatterns) == 0 {
		return false
	}
	for _, pattern := range p.requiredPatterns {
		if anyURIContains(classes, pattern) {
			return true
		}
	}
	return false
}

// Score implements Strategy.
func (p *Profile) Score(classes []conformance.Class) int {
	score := 0
	for _, pattern := range p.requiredPatterns {
		score += 10 * countURIContains(classes, pattern)
	}
	for _, pattern := range p.optionalPatterns {
		score += countURIContains(classes, pattern)
	}
	return score
}

// RequiredPaths implements Strategy.
func (p *Profile) RequiredPaths(classes []conformance.Class) []string {
	seen := make(map[string]bool)
	for _, path := range p.basePaths {
		seen[path] = true
	}
	for _, cond := range p.conditionals {
		if !anyURIContains(classes, cond.pattern) {
			continue
		}
		for _, path := range cond.paths {
			seen[path] = true
		}
		for path := range cond.operations {
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

// RequiredOperations implements Strategy.
func (p *Profile) RequiredOperations(classes []conformance.Class) map[string][]string {
	ops := make(map[string]map[string]bool)
	add := func(path string, methods []string) {
		if ops[path] == nil {
			ops[path] = make(map[string]bool)
		}
		for _, m := range methods {
			ops[path][strings.ToLower(m)] = true
		}
	}
	for path, methods := range p.baseOperations {
		add(path, methods)
	}
	for _, cond := range p.conditionals {
		if !anyURIContains(classes, cond.pattern) {
			continue
		}
		for path, methods := range cond.operations {
			add(path, methods)
		}
	}
	out := make(map[string][]string, len(ops))
	for path, methods := range ops {
		list := make([]string, 0, len(methods))
		for m := range methods {
			list = append(list, m)
		}
		sort.Strings(list)
		out[path] = list
	}
	return out
}

// Validate implements Strategy. Missing required paths and operations are
// critical findings; parameter gaps are warnings or informational notes
// depending on the triggering check.
func (p *Profile) Validate(doc openapi.Document, classes []conformance.Class) *validation.Result {
	result := validation.Success(string(p.family))

	p.checkPaths(doc, classes, result)
	p.checkOperations(doc, classes, result)
	p.checkParameters(doc, classes, result)

	return result
}

func (p *Profile) checkPaths(doc openapi.Document, classes []conformance.Class, result *validation.Result) {
	paths := doc.Paths()
	for _, template := range p.RequiredPaths(classes) {
		if strings.Contains(template, "{") {
			if findTemplateMatch(paths, template) == "" {
				result.AddFinding(validation.Finding{
					Path:     "paths/" + template,
					Message:  fmt.Sprintf("required path pattern %q not found", template),
					Kind:     findings.KindMissingRequiredPath,
					Severity: severity.SeverityCritical,
				})
			}
			continue
		}
		if _, ok := paths[template]; !ok {
			result.AddFinding(validation.Finding{
				Path:     "paths/" + template,
				Message:  fmt.Sprintf("required path %q not found", template),
				Kind:     findings.KindMissingRequiredPath,
				Severity: severity.SeverityCritical,
			})
		}
	}
}

func (p *Profile) checkOperations(doc openapi.Document, classes []conformance.Class, result *validation.Result) {
	paths := doc.Paths()
	templates := make([]string, 0)
	required := p.RequiredOperations(classes)
	for template := range required {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	for _, template := range templates {
		for _, docPath := range matchingPaths(paths, template) {
			declared := make(map[string]bool)
			for _, m := range doc.Operations(docPath) {
				declared[m] = true
			}
			for _, method := range required[template] {
				if declared[method] {
					continue
				}
				result.AddFinding(validation.Finding{
					Path:     fmt.Sprintf("paths/%s/%s", docPath, method),
					Message:  fmt.Sprintf("required operation %q not found for path %q", strings.ToUpper(method), docPath),
					Kind:     findings.KindMissingRequiredOperation,
					Severity: severity.SeverityCritical,
				})
			}
		}
	}
}

func (p *Profile) checkParameters(doc openapi.Document, classes []conformance.Class, result *validation.Result) {
	for _, check := range p.paramChecks {
		trigger, ok := p.triggeringClass(classes, check.pattern)
		if !ok {
			continue
		}
		docPath := findTemplateMatch(doc.Paths(), check.path)
		if docPath == "" || doc.Operation(docPath, check.method) == nil {
			// path-level checks already report the structural gap
			continue
		}
		declared := make(map[string]bool)
		for _, name := range doc.QueryParameters(docPath, check.method) {
			declared[name] = true
		}
		for _, param := range check.params {
			if declared[param] {
				continue
			}
			f := validation.Finding{
				Path:             fmt.Sprintf("paths/%s/%s/parameters", docPath, check.method),
				Message:          fmt.Sprintf("parameter %q is not declared on %s %s", param, strings.ToUpper(check.method), docPath),
				Kind:             findings.KindMissingParameter,
				ConformanceClass: trigger.URI,
			}
			if check.advisory {
				f.Severity = severity.SeverityInfo
				result.AddWarning(f)
			} else {
				f.Severity = severity.SeverityWarning
				result.AddFinding(f)
			}
		}
	}
}

// triggeringClass returns the first declared class of this profile's family
// whose URI contains pattern.
func (p *Profile) triggeringClass(classes []conformance.Class, pattern string) (conformance.Class, bool) {
	lower := strings.ToLower(pattern)
	for _, c := range classes {
		if c.Family != p.family {
			continue
		}
		if strings.Contains(strings.ToLower(c.URI), lower) {
			return c, true
		}
	}
	return conformance.Class{}, false
}

// templateMatches reports whether a document path satisfies a required path
// template: equal segment counts, literal template segments equal, and each
// {placeholder} template segment matching any single document segment.
func templateMatches(docPath, template string) bool {
	ds := strings.Split(strings.Trim(docPath, "/"), "/")
	ts := strings.Split(strings.Trim(template, "/"), "/")
	if len(ds) != len(ts) {
		return false
	}
	for i := range ts {
		if strings.HasPrefix(ts[i], "{") && strings.HasSuffix(ts[i], "}") {
			if ds[i] == "" {
				return false
			}
			continue
		}
		if ts[i] != ds[i] {
			return false
		}
	}
	return true
}

// findTemplateMatch returns the first document path matching the template,
// in lexical order for determinism, or empty.
func findTemplateMatch(paths map[string]any, template string) string {
	matched := matchingPaths(paths, template)
	if len(matched) == 0 {
		return ""
	}
	return matched[0]
}

func matchingPaths(paths map[string]any, template string) []string {
	var matched []string
	for path := range paths {
		if templateMatches(path, template) {
			matched = append(matched, path)
		}
	}
	sort.Strings(matched)
	return matched
}

func anyURIContains(classes []conformance.Class, pattern string) bool {
	return countURIContains(classes, pattern) > 0
}

func countURIContains(classes []conformance.Class, pattern string) int {
	lower := strings.ToLower(pattern)
	count := 0
	for _, c := range classes {
		if strings.Contains(strings.ToLower(c.URI), lower) {
			count++
		}
	}
	return count
}
