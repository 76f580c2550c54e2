package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() Document {
	return Document{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Demo Features API",
			"version": "1.0.0",
		},
		"paths": map[string]any{
			"/": map[string]any{
				"get": map[string]any{},
			},
			"/collections/{collectionId}/items": map[string]any{
				"parameters": []any{
					map[string]any{"name": "limit", "in": "query"},
				},
				"get": map[string]any{
					"parameters": []any{
						map[string]any{"name": "bbox", "in": "query"},
						map[string]any{"name": "collectionId", "in": "path"},
						map[string]any{"name": "limit", "in": "query"},
					},
				},
				"post": map[string]any{},
			},
		},
	}
}

func TestDocumentAccessors(t *testing.T) {
	doc := sampleDoc()

	assert.Equal(t, "3.0.3", doc.OpenAPIVersion())
	assert.Equal(t, "Demo Features API", doc.Title())
	assert.Equal(t, []string{"/", "/collections/{collectionId}/items"}, doc.PathNames())
	assert.Equal(t, []string{"get", "post"}, doc.Operations("/collections/{collectionId}/items"))
	assert.Nil(t, doc.Operations("/missing"))
	assert.NotNil(t, doc.Operation("/collections/{collectionId}/items", "GET"))
	assert.Nil(t, doc.Operation("/collections/{collectionId}/items", "delete"))
}

func TestDocumentZeroValue(t *testing.T) {
	var doc Document
	assert.Empty(t, doc.OpenAPIVersion())
	assert.Empty(t, doc.PathNames())
	assert.Nil(t, doc.Paths())
	assert.Nil(t, doc.ConformsTo())
}

func TestQueryParameters(t *testing.T) {
	doc := sampleDoc()
	params := doc.QueryParameters("/collections/{collectionId}/items", "get")
	// path-level first, then operation-level, path parameters and
	// duplicates excluded
	assert.Equal(t, []string{"limit", "bbox"}, params)
}

func TestConformsTo(t *testing.T) {
	doc := Document{
		"conformsTo": []any{
			"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
			17,
		},
	}
	assert.Equal(t, []string{"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core"}, doc.ConformsTo())
}

func TestConformanceHints(t *testing.T) {
	doc := Document{
		"info": map[string]any{
			"x-conformance": []any{"http://www.opengis.net/spec/ogcapi-tiles-1/1.0/conf/core"},
		},
		"x-conformsTo": []any{"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core"},
	}
	assert.Equal(t, []string{
		"http://www.opengis.net/spec/ogcapi-tiles-1/1.0/conf/core",
		"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
	}, doc.ConformanceHints())

	assert.Empty(t, Document{}.ConformanceHints())
}

func TestPathsMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"/collections/{collectionId}/items", "/collections/{cid}/items", true},
		{"/collections/{collectionId}/items", "/collections/roads/items", true},
		{"/collections/{collectionId}/items/{featureId}", "/collections/{collectionId}/items", false},
		{"/conformance", "/conformance", true},
		{"/conformance", "/api", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PathsMatch(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestMatchesPath(t *testing.T) {
	doc := sampleDoc()
	name, ok := doc.MatchesPath("/collections/{cid}/items")
	require.True(t, ok)
	assert.Equal(t, "/collections/{collectionId}/items", name)

	_, ok = doc.MatchesPath("/collections/{cid}/items/{fid}")
	assert.False(t, ok)
}
