package conformance

import (
	"fmt"
	"sort"
	"strings"
)

// SpecificationKey identifies a versioned part of an OGC API specification,
// e.g. {Family: FamilyFeatures, Version: "1.0", Part: 1}.
type SpecificationKey struct {
	Family  Family
	Version string
	Part    int
}

// String renders the key in the form "OGC API - Features Part 1 v1.0".
// The part is omitted when zero, the version when empty.
func (k SpecificationKey) String() string {
	var b strings.Builder
	b.WriteString(k.Family.DisplayName())
	if k.Part > 0 {
		fmt.Fprintf(&b, " Part %d", k.Part)
	}
	if k.Version != "" {
		fmt.Fprintf(&b, " v%s", k.Version)
	}
	return b.String()
}

// Matches reports whether k and other identify the same specification.
// In strict mode the versions must be identical; otherwise only the
// major.minor components are compared. Family and part must always match.
func (k SpecificationKey) Matches(other SpecificationKey, strict bool) bool {
	if k.Family != other.Family || k.Part != other.Part {
		return false
	}
	if strict {
		return k.Version == other.Version
	}
	return majorMinor(k.Version) == majorMinor(other.Version)
}

func majorMinor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return version
}

// KeyOf derives the specification key of a parsed conformance class. The
// second return value is false when the class belongs to no known family.
func KeyOf(c Class) (SpecificationKey, bool) {
	if c.Family == "" {
		return SpecificationKey{}, false
	}
	return SpecificationKey{Family: c.Family, Version: c.Version, Part: c.Part}, true
}

// SpecificationKeys returns the distinct specification keys present in
// classes, sorted by family priority, then part, then version descending.
func SpecificationKeys(classes []Class) []SpecificationKey {
	grouped := GroupBySpecification(classes)
	keys := make([]SpecificationKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// GroupBySpecification groups classes by their specification key. Classes
// from unknown families are dropped.
func GroupBySpecification(classes []Class) map[SpecificationKey][]Class {
	grouped := make(map[SpecificationKey][]Class)
	for _, c := range classes {
		if key, ok := KeyOf(c); ok {
			grouped[key] = append(grouped[key], c)
		}
	}
	return grouped
}

func sortKeys(keys []SpecificationKey) {
	rank := make(map[Family]int, len(familyPriority))
	for i, f := range familyPriority {
		rank[f] = i
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Family != keys[j].Family {
			return rank[keys[i].Family] < rank[keys[j].Family]
		}
		if keys[i].Part != keys[j].Part {
			return keys[i].Part < keys[j].Part
		}
		return CompareVersions(keys[i].Version, keys[j].Version) > 0
	})
}

// CompareVersions compares two dotted version strings numerically,
// returning -1, 0, or 1. Missing components compare as zero, so "1.0"
// equals "1.0.0". Non-numeric components compare lexically.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, aok := component(as, i)
		bv, bok := component(bs, i)
		if !aok || !bok {
			// fall back to a lexical compare of the raw strings
			return strings.Compare(a, b)
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

func component(parts []string, i int) (int, bool) {
	if i >= len(parts) {
		return 0, true
	}
	var n int
	_, err := fmt.Sscanf(parts[i], "%d", &n)
	return n, err == nil
}
