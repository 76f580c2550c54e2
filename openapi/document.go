// Package openapi provides a lightweight, map-backed view of OpenAPI
// documents for conformance checking.
//
// The validation in this module never needs a fully resolved object model;
// it inspects paths, operations, parameters, and a handful of top-level
// members. Document therefore wraps the raw decoded map and exposes typed
// accessors over it, tolerating missing or oddly shaped members.
package openapi

import (
	"sort"
	"strings"
)

// Document is a decoded OpenAPI document. The zero value is usable and
// behaves like an empty document.
type Document map[string]any

// OpenAPIVersion returns the value of the top-level "openapi" member, or
// empty when absent or not a string.
func (d Document) OpenAPIVersion() string {
	v, _ := d["openapi"].(string)
	return v
}

// Info returns the top-level "info" object, or nil.
func (d Document) Info() map[string]any {
	m, _ := d["info"].(map[string]any)
	return m
}

// Title returns info.title, or empty.
func (d Document) Title() string {
	t, _ := d.Info()["title"].(string)
	return t
}

// Paths returns the top-level "paths" object, or nil.
func (d Document) Paths() map[string]any {
	m, _ := d["paths"].(map[string]any)
	return m
}

// PathNames returns the declared path templates sorted lexically.
func (d Document) PathNames() []string {
	paths := d.Paths()
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PathItem returns the path item object for the given template, or nil.
func (d Document) PathItem(path string) map[string]any {
	m, _ := d.Paths()[path].(map[string]any)
	return m
}

// httpMethods are the operation members of a path item, lower case as the
// OpenAPI specification spells them.
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Operations returns the HTTP methods declared on the given path, lower
// case, in specification order.
func (d Document) Operations(path string) []string {
	item := d.PathItem(path)
	if item == nil {
		return nil
	}
	var ops []string
	for _, method := range httpMethods {
		if _, ok := item[method]; ok {
			ops = append(ops, method)
		}
	}
	return ops
}

// Operation returns the operation object for a method on a path, or nil.
// The method is matched case-insensitively.
func (d Document) Operation(path, method string) map[string]any {
	op, _ := d.PathItem(path)[strings.ToLower(method)].(map[string]any)
	return op
}

// QueryParameters returns the names of query parameters declared on an
// operation, including those inherited from the path item.
func (d Document) QueryParameters(path, method string) []string {
	var names []string
	seen := make(map[string]bool)
	collect := func(params any) {
		list, ok := params.([]any)
		if !ok {
			return
		}
		for _, raw := range list {
			p, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if in, _ := p["in"].(string); in != "query" {
				continue
			}
			name, _ := p["name"].(string)
			if name != "" && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	collect(d.PathItem(path)["parameters"])
	collect(d.Operation(path, method)["parameters"])
	return names
}

// ConformsTo returns the conformance class URIs declared in the document's
// top-level "conformsTo" member, dropping non-string entries. Most OpenAPI
// documents carry none; conformance declarations usually arrive separately
// from the API's /conformance endpoint.
func (d Document) ConformsTo() []string {
	return stringList(d["conformsTo"])
}

// ConformanceHints returns conformance class URIs embedded in the document
// itself via the info.x-conformance extension or a top-level x-conformsTo
// array. These are hints, not authoritative declarations.
func (d Document) ConformanceHints() []string {
	var uris []string
	uris = append(uris, stringList(d.Info()["x-conformance"])...)
	uris = append(uris, stringList(d["x-conformsTo"])...)
	return uris
}

func stringList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// MatchesPath reports whether the document declares a path matching the
// given template, treating placeholder segments like {collectionId} as
// wildcards on both sides. Segment counts must be equal.
func (d Document) MatchesPath(template string) (string, bool) {
	for name := range d.Paths() {
		if PathsMatch(name, template) {
			return name, true
		}
	}
	return "", false
}

// PathsMatch reports whether two path templates are equivalent under
// placeholder wildcarding: equal segment counts, and each segment pair
// either equal or with at least one side a {placeholder}.
func PathsMatch(a, b string) bool {
	as := splitPath(a)
	bs := splitPath(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] == bs[i] {
			continue
		}
		if isPlaceholder(as[i]) || isPlaceholder(bs[i]) {
			continue
		}
		return false
	}
	return true
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func isPlaceholder(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
