package conformance

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	versionRe = regexp.MustCompile(`/(\d+\.\d+(?:\.\d+)?)/`)
	partRe    = regexp.MustCompile(`-(\d+)$`)
)

// Class is a parsed OGC API conformance class URI.
type Class struct {
	// URI is the full conformance class URI and is the identity of the class.
	URI string
	// Family is the OGC API family the URI belongs to, empty when unknown.
	Family Family
	// Version is the specification version extracted from the URI path,
	// e.g. "1.0", or empty when none is present.
	Version string
	// Part is the specification part number, e.g. 1 for "ogcapi-features-1",
	// or zero when the URI carries no part suffix.
	Part int
	// Name is the final path segment of the URI, e.g. "core" or "geojson".
	Name string
	// Core reports whether this is a family's core conformance class,
	// i.e. its URI contains "/conf/core".
	Core bool
}

// ParseClass parses a single conformance class URI. It never fails: URIs
// from unknown families still yield a Class with the parseable fields set.
func ParseClass(uri string) Class {
	c := Class{URI: uri}
	c.Family, _ = FamilyOf(uri)
	if m := versionRe.FindStringSubmatch(uri); m != nil {
		c.Version = m[1]
	}
	trimmed := strings.TrimSuffix(uri, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		c.Name = trimmed[i+1:]
	} else {
		c.Name = trimmed
	}
	c.Core = strings.Contains(strings.ToLower(uri), "/conf/core")
	if c.Family != "" {
		c.Part = partOf(uri, c.Family)
	}
	return c
}

// partOf extracts the part number from the URI segment that carries the
// family marker, e.g. "ogcapi-features-1" yields 1.
func partOf(uri string, family Family) int {
	lower := strings.ToLower(uri)
	for _, seg := range strings.Split(lower, "/") {
		matched := false
		for _, marker := range familyMarkers[family] {
			m := strings.Trim(marker, "/")
			if strings.Contains(seg, m) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if pm := partRe.FindStringSubmatch(seg); pm != nil {
			n, err := strconv.Atoi(pm[1])
			if err == nil {
				return n
			}
		}
	}
	return 0
}

// ParseClasses extracts conformance class URIs from raw input and parses
// each one. Accepted shapes are a []string, a []any of strings, or a map
// with a "conformsTo" member holding either of those; anything else yields
// nil. Non-string members are dropped.
func ParseClasses(raw any) []Class {
	uris := extractURIs(raw)
	if len(uris) == 0 {
		return nil
	}
	classes := make([]Class, 0, len(uris))
	for _, uri := range uris {
		classes = append(classes, ParseClass(uri))
	}
	return classes
}

func extractURIs(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		var uris []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				uris = append(uris, s)
			}
		}
		return uris
	case map[string]any:
		if inner, ok := v["conformsTo"]; ok {
			return extractURIs(inner)
		}
	}
	return nil
}

// DetectFamilies returns the distinct families present in classes, in
// detection priority order. Classes from unknown families are ignored.
func DetectFamilies(classes []Class) []Family {
	seen := make(map[Family]bool, len(classes))
	for _, c := range classes {
		if c.Family != "" {
			seen[c.Family] = true
		}
	}
	var families []Family
	for _, f := range familyPriority {
		if seen[f] {
			families = append(families, f)
		}
	}
	return families
}

// PrimaryFamily returns the most specific family present in classes,
// preferring any non-common family over common. When classes is empty or no
// class belongs to a known family, the generic common family is returned
// and the second return value is false.
func PrimaryFamily(classes []Class) (Family, bool) {
	families := DetectFamilies(classes)
	if len(families) == 0 {
		return FamilyCommon, false
	}
	for _, f := range families {
		if f != FamilyCommon {
			return f, true
		}
	}
	return families[0], true
}
