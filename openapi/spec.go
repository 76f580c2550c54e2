package openapi

import (
	"fmt"
	"strings"

	"github.com/francbartoli/ogcapi-registry/ogcerrors"
)

// SpecificationType identifies the OpenAPI specification flavor a document
// is written against.
type SpecificationType string

const (
	// SpecOpenAPI30 is the OpenAPI 3.0.x specification.
	SpecOpenAPI30 SpecificationType = "openapi-3.0"
	// SpecOpenAPI31 is the OpenAPI 3.1.x specification.
	SpecOpenAPI31 SpecificationType = "openapi-3.1"
)

// SpecificationTypeFromVersion maps a document's "openapi" version string
// to its specification type. Versions outside the 3.x range are rejected;
// Swagger 2.0 documents are not supported.
func SpecificationTypeFromVersion(version string) (SpecificationType, error) {
	switch {
	case version == "":
		return "", &ogcerrors.ParseError{Message: "document has no openapi version member"}
	case strings.HasPrefix(version, "3.0"):
		return SpecOpenAPI30, nil
	case strings.HasPrefix(version, "3.1"):
		return SpecOpenAPI31, nil
	default:
		return "", &ogcerrors.ParseError{
			Message: fmt.Sprintf("unsupported OpenAPI version %q, expected 3.0.x or 3.1.x", version),
		}
	}
}

// SpecificationKey identifies a registered OpenAPI document by its
// specification type and version, e.g. {openapi-3.0, "3.0.3"}.
type SpecificationKey struct {
	Type    SpecificationType
	Version string
}

// String renders the key as "openapi-3.0@3.0.3".
func (k SpecificationKey) String() string {
	return fmt.Sprintf("%s@%s", k.Type, k.Version)
}

// KeyForDocument derives the specification key of a parsed document from
// its "openapi" member.
func KeyForDocument(doc Document) (SpecificationKey, error) {
	version := doc.OpenAPIVersion()
	specType, err := SpecificationTypeFromVersion(version)
	if err != nil {
		return SpecificationKey{}, err
	}
	return SpecificationKey{Type: specType, Version: version}, nil
}
