package openapi

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/francbartoli/ogcapi-registry/ogcerrors"
)

// ParseContent decodes raw OpenAPI content into a Document. JSON is tried
// first; on failure the content is decoded as YAML, which also covers JSON
// with comments or unquoted keys. The source name only labels errors.
func ParseContent(data []byte, source string) (Document, error) {
	if len(data) == 0 {
		return nil, &ogcerrors.ParseError{Source: source, Message: "empty document"}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	// Decode into a plain map: yaml/v4 propagates a named map type like
	// Document to nested mappings, which would defeat the map[string]any
	// assertions in Document's accessors.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ogcerrors.ParseError{
			Source:  source,
			Message: fmt.Sprintf("content is neither valid JSON nor valid YAML: %v", err),
			Cause:   err,
		}
	}
	doc = Document(raw)
	if doc == nil {
		return nil, &ogcerrors.ParseError{Source: source, Message: "document decodes to null"}
	}
	return doc, nil
}
