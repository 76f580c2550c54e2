package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		family  Family
		version string
		part    int
		class   string
		core    bool
	}{
		{
			name:    "features core",
			uri:     "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
			family:  FamilyFeatures,
			version: "1.0",
			part:    1,
			class:   "core",
			core:    true,
		},
		{
			name:    "features geojson",
			uri:     "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/geojson",
			family:  FamilyFeatures,
			version: "1.0",
			part:    1,
			class:   "geojson",
		},
		{
			name:    "features part 2 crs",
			uri:     "http://www.opengis.net/spec/ogcapi-features-2/1.0/conf/crs",
			family:  FamilyFeatures,
			version: "1.0",
			part:    2,
			class:   "crs",
		},
		{
			name:    "common core",
			uri:     "http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core",
			family:  FamilyCommon,
			version: "1.0",
			part:    1,
			class:   "core",
			core:    true,
		},
		{
			name:    "tiles",
			uri:     "http://www.opengis.net/spec/ogcapi-tiles-1/1.0/conf/tileset",
			family:  FamilyTiles,
			version: "1.0",
			part:    1,
			class:   "tileset",
		},
		{
			name:    "processes patch version",
			uri:     "http://www.opengis.net/spec/ogcapi-processes-1/1.0.1/conf/ogc-process-description",
			family:  FamilyProcesses,
			version: "1.0.1",
			part:    1,
			class:   "ogc-process-description",
		},
		{
			name:    "edr",
			uri:     "http://www.opengis.net/spec/ogcapi-edr-1/1.1/conf/core",
			family:  FamilyEDR,
			version: "1.1",
			part:    1,
			class:   "core",
			core:    true,
		},
		{
			name:   "unknown family",
			uri:    "http://example.com/spec/something/1.0/conf/core",
			family: "",
			// version still parses from the path
			version: "1.0",
			class:   "core",
			core:    true,
		},
		{
			name:    "core with trailing requirement segment",
			uri:     "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core/requirement-1",
			family:  FamilyFeatures,
			version: "1.0",
			part:    1,
			class:   "requirement-1",
			core:    true,
		},
		{
			name:    "core detection is case insensitive",
			uri:     "http://www.opengis.net/spec/ogcapi-features-1/1.0/CONF/CORE",
			family:  FamilyFeatures,
			version: "1.0",
			part:    1,
			class:   "CORE",
			core:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseClass(tt.uri)
			assert.Equal(t, tt.uri, c.URI)
			assert.Equal(t, tt.family, c.Family)
			assert.Equal(t, tt.version, c.Version)
			assert.Equal(t, tt.part, c.Part)
			assert.Equal(t, tt.class, c.Name)
			assert.Equal(t, tt.core, c.Core)
		})
	}
}

func TestFamilyOfPriority(t *testing.T) {
	// a URI carrying both a specific and a common marker resolves to the
	// specific family
	family, ok := FamilyOf("http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core")
	require.True(t, ok)
	assert.Equal(t, FamilyFeatures, family)

	_, ok = FamilyOf("http://example.com/totally/unrelated")
	assert.False(t, ok)
}

func TestParseClasses(t *testing.T) {
	featuresCore := "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core"
	commonCore := "http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core"

	t.Run("string slice", func(t *testing.T) {
		classes := ParseClasses([]string{featuresCore, commonCore})
		require.Len(t, classes, 2)
		assert.Equal(t, FamilyFeatures, classes[0].Family)
		assert.Equal(t, FamilyCommon, classes[1].Family)
	})

	t.Run("any slice drops non-strings", func(t *testing.T) {
		classes := ParseClasses([]any{featuresCore, 42, commonCore, nil})
		require.Len(t, classes, 2)
		assert.Equal(t, featuresCore, classes[0].URI)
		assert.Equal(t, commonCore, classes[1].URI)
	})

	t.Run("conformsTo map", func(t *testing.T) {
		classes := ParseClasses(map[string]any{
			"conformsTo": []any{featuresCore},
		})
		require.Len(t, classes, 1)
		assert.Equal(t, FamilyFeatures, classes[0].Family)
	})

	t.Run("unsupported shape", func(t *testing.T) {
		assert.Nil(t, ParseClasses("not-a-collection"))
		assert.Nil(t, ParseClasses(nil))
	})
}

func TestDetectFamilies(t *testing.T) {
	classes := ParseClasses([]string{
		"http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core",
		"http://www.opengis.net/spec/ogcapi-tiles-1/1.0/conf/core",
		"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
		"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/geojson",
	})
	families := DetectFamilies(classes)
	assert.Equal(t, []Family{FamilyFeatures, FamilyTiles, FamilyCommon}, families)
}

func TestPrimaryFamily(t *testing.T) {
	t.Run("specific beats common", func(t *testing.T) {
		classes := ParseClasses([]string{
			"http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core",
			"http://www.opengis.net/spec/ogcapi-records-1/1.0/conf/core",
		})
		family, ok := PrimaryFamily(classes)
		require.True(t, ok)
		assert.Equal(t, FamilyRecords, family)
	})

	t.Run("common alone", func(t *testing.T) {
		classes := ParseClasses([]string{
			"http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core",
		})
		family, ok := PrimaryFamily(classes)
		require.True(t, ok)
		assert.Equal(t, FamilyCommon, family)
	})

	t.Run("no known family defaults to common", func(t *testing.T) {
		classes := ParseClasses([]string{"http://example.com/conf/whatever"})
		family, ok := PrimaryFamily(classes)
		assert.False(t, ok)
		assert.Equal(t, FamilyCommon, family)
	})

	t.Run("empty defaults to common", func(t *testing.T) {
		family, ok := PrimaryFamily(nil)
		assert.False(t, ok)
		assert.Equal(t, FamilyCommon, family)
	})
}
