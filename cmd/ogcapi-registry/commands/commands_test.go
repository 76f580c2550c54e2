package commands

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francbartoli/ogcapi-registry/ogcerrors"
)

const featuresSpec = `openapi: "3.0.3"
info:
  title: Features API
  version: "1.0.0"
paths:
  /:
    get: {}
  /conformance:
    get: {}
  /collections:
    get: {}
  /collections/{collectionId}:
    get: {}
  /collections/{collectionId}/items:
    get:
      parameters:
        - name: limit
          in: query
        - name: bbox
          in: query
  /collections/{collectionId}/items/{featureId}:
    get: {}
`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatText))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))

	err := ValidateOutputFormat("xml")
	assert.True(t, errors.Is(err, ogcerrors.ErrConfig))
	var cfgErr *ogcerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "format", cfgErr.Option)
	assert.Equal(t, "xml", cfgErr.Value)

	assert.True(t, errors.Is(OutputStructured(struct{}{}, FormatText), ogcerrors.ErrConfig))
}

func TestValidateCompliant(t *testing.T) {
	path := writeSpec(t, featuresSpec)
	err := Validate([]string{
		"--quiet",
		"--conformance", "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
		path,
	})
	assert.NoError(t, err)
}

func TestValidateNonCompliant(t *testing.T) {
	path := writeSpec(t, "openapi: \"3.0.3\"\ninfo:\n  title: t\n  version: \"1\"\npaths: {}\n")
	err := Validate([]string{
		"--quiet",
		"--conformance", "http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core",
		path,
	})
	assert.True(t, errors.Is(err, ErrNotCompliant))
}

func TestValidateStructuralFailure(t *testing.T) {
	path := writeSpec(t, "openapi: \"2.0\"\n")
	err := Validate([]string{"--quiet", path})
	assert.True(t, errors.Is(err, ErrNotCompliant))
}

func TestValidateArgumentErrors(t *testing.T) {
	assert.Error(t, Validate(nil))
	assert.Error(t, Validate([]string{"--format", "xml", "some.yaml"}))
	assert.Error(t, Validate([]string{filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestConformanceInline(t *testing.T) {
	err := Conformance([]string{
		"--format", "json",
		"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
	})
	assert.NoError(t, err)
}

func TestConformanceFromEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"conformsTo": ["http://www.opengis.net/spec/ogcapi-tiles-1/1.0/conf/core"]}`))
	}))
	defer srv.Close()

	assert.NoError(t, Conformance([]string{"--format", "yaml", "--from", srv.URL}))
}

func TestConformanceNoInput(t *testing.T) {
	assert.Error(t, Conformance(nil))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(featuresSpec))
	}))
	defer srv.Close()

	assert.NoError(t, Fetch([]string{srv.URL}))
	assert.NoError(t, Fetch([]string{"--format", "json", srv.URL}))
	assert.Error(t, Fetch(nil))
}

func TestReadDocument(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		doc, err := ReadDocument(context.Background(), writeSpec(t, featuresSpec))
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", doc.OpenAPIVersion())
	})

	t.Run("url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(featuresSpec))
		}))
		defer srv.Close()
		doc, err := ReadDocument(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Features API", doc.Title())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadDocument(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
