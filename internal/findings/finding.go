// Package findings provides the finding type shared by the strategy and
// validator packages.
package findings

import (
	"fmt"

	"github.com/francbartoli/ogcapi-registry/internal/severity"
)

// Kind classifies a finding. The set is closed so consumers can switch on it
// exhaustively.
type Kind string

const (
	// KindMissingRequiredPath indicates a required resource path is absent.
	KindMissingRequiredPath Kind = "missing_required_path"
	// KindMissingRequiredOperation indicates a required HTTP method is absent
	// on a path that does exist.
	KindMissingRequiredOperation Kind = "missing_required_operation"
	// KindMissingParameter indicates a query parameter implied by a declared
	// conformance class is absent.
	KindMissingParameter Kind = "missing_parameter"
	// KindMissingRequired indicates a required top-level document field is
	// absent.
	KindMissingRequired Kind = "missing_required"
	// KindInvalidType indicates a document field has the wrong type.
	KindInvalidType Kind = "invalid_type"
	// KindUnsupportedVersion indicates the declared OpenAPI version is not
	// supported.
	KindUnsupportedVersion Kind = "unsupported_version"
	// KindVersionMismatch indicates the document version differs from an
	// expected reference version.
	KindVersionMismatch Kind = "version_mismatch"
	// KindTypeMismatch indicates the document's OpenAPI type is incompatible
	// with a reference specification's type.
	KindTypeMismatch Kind = "type_mismatch"
	// KindParseError indicates the document content could not be parsed.
	KindParseError Kind = "parse_error"
)

// Finding represents a single problem found while validating a document.
type Finding struct {
	// Path is the locator of the problematic element
	// (e.g., "paths./collections/{collectionId}/items.get")
	Path string
	// Message is a human-readable description of the finding
	Message string
	// Kind classifies the finding
	Kind Kind
	// Severity indicates the severity level of the finding
	Severity severity.Severity
	// ConformanceClass is the URI of the conformance class that triggered the
	// check, when the finding is tied to a declared class (optional)
	ConformanceClass string
	// Field is the specific field name that has the issue (optional)
	Field string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the finding.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (f Finding) String() string {
	var symbol string
	switch f.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, f.Path, f.Message)
	if f.ConformanceClass != "" {
		result += fmt.Sprintf("\n    Conformance: %s", f.ConformanceClass)
	}
	return result
}
