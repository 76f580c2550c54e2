package openapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francbartoli/ogcapi-registry/ogcerrors"
)

func TestParseContentJSON(t *testing.T) {
	data := []byte(`{"openapi": "3.0.3", "info": {"title": "t", "version": "1"}, "paths": {}}`)
	doc, err := ParseContent(data, "inline.json")
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPIVersion())
}

func TestParseContentYAML(t *testing.T) {
	data := []byte("openapi: 3.1.0\ninfo:\n  title: t\n  version: '1'\npaths:\n  /conformance:\n    get: {}\n")
	doc, err := ParseContent(data, "inline.yaml")
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", doc.OpenAPIVersion())
	assert.Contains(t, doc.Paths(), "/conformance")
}

func TestParseContentErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := ParseContent(nil, "empty")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ogcerrors.ErrParse))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseContent([]byte(":\n\t{not yaml"), "bad")
		require.Error(t, err)
		var perr *ogcerrors.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "bad", perr.Source)
	})
}

func TestSpecificationTypeFromVersion(t *testing.T) {
	tests := []struct {
		version string
		want    SpecificationType
		wantErr bool
	}{
		{"3.0.3", SpecOpenAPI30, false},
		{"3.1.0", SpecOpenAPI31, false},
		{"2.0", "", true},
		{"4.0.0", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := SpecificationTypeFromVersion(tt.version)
		if tt.wantErr {
			assert.Error(t, err, tt.version)
			assert.True(t, errors.Is(err, ogcerrors.ErrParse))
			continue
		}
		require.NoError(t, err, tt.version)
		assert.Equal(t, tt.want, got)
	}
}

func TestKeyForDocument(t *testing.T) {
	doc := Document{"openapi": "3.0.3"}
	key, err := KeyForDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, SpecificationKey{Type: SpecOpenAPI30, Version: "3.0.3"}, key)
	assert.Equal(t, "openapi-3.0@3.0.3", key.String())

	_, err = KeyForDocument(Document{"swagger": "2.0"})
	assert.Error(t, err)
}
