// Package conformance models OGC API conformance class URIs.
//
// A conformance class is a URI that identifies a specific capability an API
// implementation claims to support, e.g.
// "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core". This package
// parses such URIs into typed records, determines which OGC API family each
// one belongs to, and groups them into versioned specification keys.
package conformance

import "strings"

// Family identifies an OGC API specification family.
type Family string

const (
	// FamilyCommon is OGC API - Common, the generic baseline.
	FamilyCommon Family = "ogcapi-common"
	// FamilyFeatures is OGC API - Features.
	FamilyFeatures Family = "ogcapi-features"
	// FamilyTiles is OGC API - Tiles.
	FamilyTiles Family = "ogcapi-tiles"
	// FamilyMaps is OGC API - Maps.
	FamilyMaps Family = "ogcapi-maps"
	// FamilyProcesses is OGC API - Processes.
	FamilyProcesses Family = "ogcapi-processes"
	// FamilyRecords is OGC API - Records.
	FamilyRecords Family = "ogcapi-records"
	// FamilyCoverages is OGC API - Coverages.
	FamilyCoverages Family = "ogcapi-coverages"
	// FamilyEDR is OGC API - Environmental Data Retrieval.
	FamilyEDR Family = "ogcapi-edr"
	// FamilyStyles is OGC API - Styles.
	FamilyStyles Family = "ogcapi-styles"
	// FamilyRoutes is OGC API - Routes.
	FamilyRoutes Family = "ogcapi-routes"
)

// DisplayName returns the human-readable name of the family.
func (f Family) DisplayName() string {
	switch f {
	case FamilyCommon:
		return "OGC API - Common"
	case FamilyFeatures:
		return "OGC API - Features"
	case FamilyTiles:
		return "OGC API - Tiles"
	case FamilyMaps:
		return "OGC API - Maps"
	case FamilyProcesses:
		return "OGC API - Processes"
	case FamilyRecords:
		return "OGC API - Records"
	case FamilyCoverages:
		return "OGC API - Coverages"
	case FamilyEDR:
		return "OGC API - Environmental Data Retrieval"
	case FamilyStyles:
		return "OGC API - Styles"
	case FamilyRoutes:
		return "OGC API - Routes"
	default:
		return string(f)
	}
}

// familyMarkers maps each family to the lower-case substrings that identify
// it inside a conformance class URI. Evaluated in familyPriority order; the
// generic common markers must come last since "ogcapi-common" style tokens
// can appear as substrings of longer, more specific identifiers.
var familyMarkers = map[Family][]string{
	FamilyFeatures:  {"ogcapi-features", "/features-"},
	FamilyTiles:     {"ogcapi-tiles", "/tiles-"},
	FamilyMaps:      {"ogcapi-maps", "/maps-"},
	FamilyProcesses: {"ogcapi-processes", "/processes-"},
	FamilyRecords:   {"ogcapi-records", "/records-"},
	FamilyCoverages: {"ogcapi-coverages", "/coverages-"},
	FamilyEDR:       {"ogcapi-edr", "/edr-"},
	FamilyStyles:    {"ogcapi-styles", "/styles-"},
	FamilyRoutes:    {"ogcapi-routes", "/routes-"},
	FamilyCommon:    {"ogcapi-common", "/common-"},
}

// familyPriority lists families in detection priority order, most specific
// first and the generic common family last.
var familyPriority = []Family{
	FamilyFeatures,
	FamilyTiles,
	FamilyMaps,
	FamilyProcesses,
	FamilyRecords,
	FamilyCoverages,
	FamilyEDR,
	FamilyStyles,
	FamilyRoutes,
	FamilyCommon,
}

// Families returns all known families in detection priority order.
func Families() []Family {
	out := make([]Family, len(familyPriority))
	copy(out, familyPriority)
	return out
}

// FamilyOf determines the OGC API family of a conformance class URI by
// testing the family markers in priority order. The second return value is
// false if no family marker matched.
func FamilyOf(uri string) (Family, bool) {
	lower := strings.ToLower(uri)
	for _, family := range familyPriority {
		for _, marker := range familyMarkers[family] {
			if strings.Contains(lower, marker) {
				return family, true
			}
		}
	}
	return "", false
}
