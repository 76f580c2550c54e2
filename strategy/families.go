package strategy

import "github.com/francbartoli/ogcapi-registry/conformance"

// itemsPath is the canonical features/records item collection template.
const itemsPath = "/collections/{collectionId}/items"

// NewCommonStrategy returns the profile for OGC API - Common, the generic
// baseline every OGC API implementation shares. It is also the registry's
// fallback when no declared class matches any other family.
func NewCommonStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyCommon,
		requiredPatterns: []string{"ogcapi-common"},
		optionalPatterns: []string{"/conf/landing-page", "/conf/json", "/conf/html", "/conf/oas30"},
		basePaths:        []string{"/", "/conformance"},
		baseOperations: map[string][]string{
			"/":            {"get"},
			"/conformance": {"get"},
		},
	}
}

// NewFeaturesStrategy returns the profile for OGC API - Features.
//
// The bbox check on the items operation stays a warning even though it is
// tied to the core class: a recommended query capability is softer than a
// required resource path.
func NewFeaturesStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyFeatures,
		requiredPatterns: []string{"ogcapi-features"},
		optionalPatterns: []string{"/conf/geojson", "/conf/html", "/conf/oas30", "/conf/crs", "/conf/filter"},
		basePaths: []string{
			"/", "/conformance", "/collections",
			"/collections/{collectionId}",
			itemsPath,
			itemsPath + "/{featureId}",
		},
		baseOperations: map[string][]string{
			"/":                            {"get"},
			"/conformance":                 {"get"},
			"/collections":                 {"get"},
			"/collections/{collectionId}":  {"get"},
			itemsPath:                      {"get"},
			itemsPath + "/{featureId}":     {"get"},
		},
		paramChecks: []paramCheck{
			{pattern: "/conf/core", path: itemsPath, method: "get", params: []string{"bbox"}},
			{pattern: "/conf/crs", path: itemsPath, method: "get", params: []string{"crs", "bbox-crs"}},
			{pattern: "/conf/filter", path: itemsPath, method: "get", params: []string{"filter", "filter-lang"}, advisory: true},
		},
	}
}

// NewTilesStrategy returns the profile for OGC API - Tiles.
func NewTilesStrategy() *Profile {
	tilePath := "/collections/{collectionId}/tiles/{tileMatrixSetId}/{tileMatrix}/{tileRow}/{tileCol}"
	return &Profile{
		family:           conformance.FamilyTiles,
		requiredPatterns: []string{"ogcapi-tiles"},
		optionalPatterns: []string{"/conf/tileset", "/conf/tilesets-list", "/conf/dataset-tilesets", "/conf/geodata-tilesets"},
		basePaths: []string{
			"/", "/conformance",
			"/collections/{collectionId}/tiles",
			tilePath,
		},
		baseOperations: map[string][]string{
			"/":            {"get"},
			"/conformance": {"get"},
			"/collections/{collectionId}/tiles": {"get"},
			tilePath:                            {"get"},
		},
		conditionals: []conditional{
			{
				pattern: "dataset-tilesets",
				paths:   []string{"/tiles", "/tiles/{tileMatrixSetId}"},
				operations: map[string][]string{
					"/tiles":                   {"get"},
					"/tiles/{tileMatrixSetId}": {"get"},
				},
			},
			{
				pattern: "tilematrixset",
				operations: map[string][]string{
					"/tileMatrixSets":                   {"get"},
					"/tileMatrixSets/{tileMatrixSetId}": {"get"},
				},
			},
		},
	}
}

// NewProcessesStrategy returns the profile for OGC API - Processes.
func NewProcessesStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyProcesses,
		requiredPatterns: []string{"ogcapi-processes"},
		optionalPatterns: []string{"/conf/ogc-process-description", "/conf/json", "/conf/job-list", "/conf/dismiss", "/conf/callback"},
		basePaths: []string{
			"/", "/conformance", "/processes",
			"/processes/{processId}",
			"/processes/{processId}/execution",
		},
		baseOperations: map[string][]string{
			"/":                                {"get"},
			"/conformance":                     {"get"},
			"/processes":                       {"get"},
			"/processes/{processId}":           {"get"},
			"/processes/{processId}/execution": {"post"},
		},
		conditionals: []conditional{
			{
				pattern:    "job-list",
				operations: map[string][]string{"/jobs": {"get"}},
			},
			{
				pattern: "/conf/dismiss",
				operations: map[string][]string{
					"/jobs/{jobId}": {"delete", "get"},
				},
			},
		},
	}
}

// NewRecordsStrategy returns the profile for OGC API - Records.
func NewRecordsStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyRecords,
		requiredPatterns: []string{"ogcapi-records"},
		optionalPatterns: []string{"/conf/record-core", "/conf/json", "/conf/html", "/conf/sorting", "/conf/cql-filter"},
		basePaths: []string{
			"/", "/conformance", "/collections",
			"/collections/{collectionId}",
			itemsPath,
			itemsPath + "/{recordId}",
		},
		baseOperations: map[string][]string{
			"/":                           {"get"},
			"/conformance":                {"get"},
			"/collections":                {"get"},
			"/collections/{collectionId}": {"get"},
			itemsPath:                     {"get"},
			itemsPath + "/{recordId}":     {"get"},
		},
		paramChecks: []paramCheck{
			{pattern: "/conf/sorting", path: itemsPath, method: "get", params: []string{"sortby"}},
			{pattern: "cql-filter", path: itemsPath, method: "get", params: []string{"filter", "filter-lang"}, advisory: true},
		},
	}
}

// NewCoveragesStrategy returns the profile for OGC API - Coverages.
func NewCoveragesStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyCoverages,
		requiredPatterns: []string{"ogcapi-coverages"},
		optionalPatterns: []string{"/conf/geodata-coverage", "/conf/coverage-subset", "/conf/coverage-scaling"},
		basePaths: []string{
			"/", "/conformance", "/collections",
			"/collections/{collectionId}",
			"/collections/{collectionId}/coverage",
		},
		baseOperations: map[string][]string{
			"/":                                    {"get"},
			"/conformance":                         {"get"},
			"/collections":                         {"get"},
			"/collections/{collectionId}":          {"get"},
			"/collections/{collectionId}/coverage": {"get"},
		},
		paramChecks: []paramCheck{
			{pattern: "coverage-subset", path: "/collections/{collectionId}/coverage", method: "get", params: []string{"subset"}},
		},
	}
}

// NewEDRStrategy returns the profile for OGC API - Environmental Data
// Retrieval. Query-type paths are unlocked by the matching conformance
// classes rather than required across the board.
func NewEDRStrategy() *Profile {
	queryTypes := []string{"position", "radius", "area", "cube", "trajectory", "corridor"}
	conditionals := make([]conditional, 0, len(queryTypes))
	optional := make([]string, 0, len(queryTypes))
	for _, q := range queryTypes {
		path := "/collections/{collectionId}/" + q
		conditionals = append(conditionals, conditional{
			pattern:    "/conf/" + q,
			operations: map[string][]string{path: {"get"}},
		})
		optional = append(optional, "/conf/"+q)
	}
	return &Profile{
		family:           conformance.FamilyEDR,
		requiredPatterns: []string{"ogcapi-edr"},
		optionalPatterns: optional,
		basePaths: []string{
			"/", "/conformance", "/collections",
			"/collections/{collectionId}",
		},
		baseOperations: map[string][]string{
			"/":                           {"get"},
			"/conformance":                {"get"},
			"/collections":                {"get"},
			"/collections/{collectionId}": {"get"},
		},
		conditionals: conditionals,
	}
}

// NewMapsStrategy returns the profile for OGC API - Maps.
func NewMapsStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyMaps,
		requiredPatterns: []string{"ogcapi-maps"},
		optionalPatterns: []string{"/conf/geodata-map", "/conf/background", "/conf/crs", "/conf/scaling"},
		basePaths: []string{
			"/", "/conformance", "/collections",
			"/collections/{collectionId}/map",
		},
		baseOperations: map[string][]string{
			"/":                               {"get"},
			"/conformance":                    {"get"},
			"/collections":                    {"get"},
			"/collections/{collectionId}/map": {"get"},
		},
		paramChecks: []paramCheck{
			{pattern: "/conf/scaling", path: "/collections/{collectionId}/map", method: "get", params: []string{"width", "height"}},
		},
	}
}

// NewStylesStrategy returns the profile for OGC API - Styles.
func NewStylesStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyStyles,
		requiredPatterns: []string{"ogcapi-styles"},
		optionalPatterns: []string{"/conf/manage-styles", "/conf/style-validation", "/conf/mapbox-styles", "/conf/sld-10"},
		basePaths: []string{
			"/", "/conformance", "/styles", "/styles/{styleId}",
		},
		baseOperations: map[string][]string{
			"/":                 {"get"},
			"/conformance":      {"get"},
			"/styles":           {"get"},
			"/styles/{styleId}": {"get"},
		},
		conditionals: []conditional{
			{
				pattern: "manage-styles",
				operations: map[string][]string{
					"/styles":           {"post"},
					"/styles/{styleId}": {"put", "delete"},
				},
			},
		},
	}
}

// NewRoutesStrategy returns the profile for OGC API - Routes.
func NewRoutesStrategy() *Profile {
	return &Profile{
		family:           conformance.FamilyRoutes,
		requiredPatterns: []string{"ogcapi-routes"},
		optionalPatterns: []string{"/conf/delete-route", "/conf/callback", "/conf/result-set", "/conf/sync-mode"},
		basePaths: []string{
			"/", "/conformance", "/routes",
		},
		baseOperations: map[string][]string{
			"/":            {"get"},
			"/conformance": {"get"},
			"/routes":      {"get", "post"},
		},
		conditionals: []conditional{
			{
				pattern: "delete-route",
				operations: map[string][]string{
					"/routes/{routeId}": {"get", "delete"},
				},
			},
		},
	}
}
