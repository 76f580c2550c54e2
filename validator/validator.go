// Package validator checks the structure of OpenAPI documents and compares
// them against registered reference specifications.
//
// Structural validation covers the required top-level members (openapi,
// info, paths), their types, and the declared OpenAPI version. It is the
// step that runs before any conformance profile validation: a document that
// fails here cannot be meaningfully checked against an OGC API profile.
package validator

import (
	"fmt"

	"github.com/francbartoli/ogcapi-registry/internal/findings"
	"github.com/francbartoli/ogcapi-registry/internal/severity"
	"github.com/francbartoli/ogcapi-registry/openapi"
	"github.com/francbartoli/ogcapi-registry/registry"
	"github.com/francbartoli/ogcapi-registry/validation"
)

// ValidateStructure checks the document's required top-level structure.
// When target is non-empty and the document's detected specification type
// differs, an advisory version_mismatch note is added. An unsupported
// OpenAPI version short-circuits the pass with that single finding.
func ValidateStructure(doc openapi.Document, target openapi.SpecificationType) *validation.Result {
	result := validation.Success(string(target))

	rawVersion, hasVersion := doc["openapi"]
	switch {
	case !hasVersion:
		result.AddFinding(validation.Finding{
			Path:     "openapi",
			Message:  "required member \"openapi\" is missing",
			Kind:     findings.KindMissingRequired,
			Severity: severity.SeverityCritical,
		})
	default:
		version, ok := rawVersion.(string)
		if !ok {
			result.AddFinding(validation.Finding{
				Path:     "openapi",
				Message:  fmt.Sprintf("member \"openapi\" must be a string, got %T", rawVersion),
				Kind:     findings.KindInvalidType,
				Severity: severity.SeverityCritical,
			})
			break
		}
		detected, err := openapi.SpecificationTypeFromVersion(version)
		if err != nil {
			// an unsupported version makes the rest of the pass meaningless
			return validation.Failure(string(target), []validation.Finding{{
				Path:     "openapi",
				Message:  fmt.Sprintf("unsupported OpenAPI version %q", version),
				Kind:     findings.KindUnsupportedVersion,
				Severity: severity.SeverityCritical,
			}}, nil)
		}
		if result.ValidatedAgainst == "" {
			result.ValidatedAgainst = string(detected)
		}
		if target != "" && detected != target {
			result.AddWarning(validation.Finding{
				Path:     "openapi",
				Message:  fmt.Sprintf("document is %s but was validated against %s", detected, target),
				Kind:     findings.KindVersionMismatch,
				Severity: severity.SeverityInfo,
			})
		}
	}

	validateInfo(doc, result)
	validatePaths(doc, result)
	return result
}

func validateInfo(doc openapi.Document, result *validation.Result) {
	rawInfo, ok := doc["info"]
	if !ok {
		result.AddFinding(validation.Finding{
			Path:     "info",
			Message:  "required member \"info\" is missing",
			Kind:     findings.KindMissingRequired,
			Severity: severity.SeverityCritical,
		})
		return
	}
	info, ok := rawInfo.(map[string]any)
	if !ok {
		result.AddFinding(validation.Finding{
			Path:     "info",
			Message:  fmt.Sprintf("member \"info\" must be an object, got %T", rawInfo),
			Kind:     findings.KindInvalidType,
			Severity: severity.SeverityCritical,
		})
		return
	}
	for _, field := range []string{"title", "version"} {
		raw, ok := info[field]
		if !ok {
			result.AddFinding(validation.Finding{
				Path:     "info/" + field,
				Message:  fmt.Sprintf("required member \"info.%s\" is missing", field),
				Kind:     findings.KindMissingRequired,
				Severity: severity.SeverityCritical,
			})
			continue
		}
		if _, ok := raw.(string); !ok {
			result.AddFinding(validation.Finding{
				Path:     "info/" + field,
				Message:  fmt.Sprintf("member \"info.%s\" must be a string, got %T", field, raw),
				Kind:     findings.KindInvalidType,
				Severity: severity.SeverityCritical,
			})
		}
	}
}

func validatePaths(doc openapi.Document, result *validation.Result) {
	rawPaths, ok := doc["paths"]
	if !ok {
		result.AddFinding(validation.Finding{
			Path:     "paths",
			Message:  "required member \"paths\" is missing",
			Kind:     findings.KindMissingRequired,
			Severity: severity.SeverityCritical,
		})
		return
	}
	if _, ok := rawPaths.(map[string]any); !ok {
		result.AddFinding(validation.Finding{
			Path:     "paths",
			Message:  fmt.Sprintf("member \"paths\" must be an object, got %T", rawPaths),
			Kind:     findings.KindInvalidType,
			Severity: severity.SeverityCritical,
		})
	}
}

// ValidateAgainstReference validates the document's structure against the
// specification type of a reference document. A specification type drift
// between document and reference is a type_mismatch warning; in strict mode
// the full version strings must match too.
func ValidateAgainstReference(doc, ref openapi.Document, strict bool) *validation.Result {
	refKey, err := openapi.KeyForDocument(ref)
	if err != nil {
		return validation.Failure("", []validation.Finding{{
			Path:     "openapi",
			Message:  "reference document has no usable openapi version",
			Kind:     findings.KindUnsupportedVersion,
			Severity: severity.SeverityCritical,
		}}, nil)
	}

	result := ValidateStructure(doc, "")
	result.ValidatedAgainst = refKey.String()

	docType, err := openapi.SpecificationTypeFromVersion(doc.OpenAPIVersion())
	if err == nil && docType != refKey.Type {
		result.AddFinding(validation.Finding{
			Path:     "openapi",
			Message:  fmt.Sprintf("document is %s but the reference is %s", docType, refKey.Type),
			Kind:     findings.KindTypeMismatch,
			Severity: severity.SeverityWarning,
		})
	}

	if strict && doc.OpenAPIVersion() != refKey.Version {
		result.AddFinding(validation.Finding{
			Path:     "openapi",
			Message:  fmt.Sprintf("document version %q does not match reference version %q", doc.OpenAPIVersion(), refKey.Version),
			Kind:     findings.KindVersionMismatch,
			Severity: severity.SeverityWarning,
		})
	}
	return result
}

// ValidateDocument parses raw content when necessary and validates its
// structure. Parse failures become a parse_error finding rather than a
// returned error, so callers always get a Result. Accepted shapes are
// []byte, string, openapi.Document, and map[string]any.
func ValidateDocument(raw any, source string) *validation.Result {
	var doc openapi.Document
	switch v := raw.(type) {
	case openapi.Document:
		doc = v
	case map[string]any:
		doc = v
	case []byte:
		parsed, err := openapi.ParseContent(v, source)
		if err != nil {
			return parseFailure(err)
		}
		doc = parsed
	case string:
		parsed, err := openapi.ParseContent([]byte(v), source)
		if err != nil {
			return parseFailure(err)
		}
		doc = parsed
	default:
		return validation.Failure("", []validation.Finding{{
			Message:  fmt.Sprintf("unsupported document input type %T", raw),
			Kind:     findings.KindParseError,
			Severity: severity.SeverityCritical,
		}}, nil)
	}
	return ValidateStructure(doc, "")
}

func parseFailure(err error) *validation.Result {
	return validation.Failure("", []validation.Finding{{
		Message:  err.Error(),
		Kind:     findings.KindParseError,
		Severity: severity.SeverityCritical,
	}}, nil)
}

// Validator validates documents against references held in a
// SpecificationRegistry.
type Validator struct {
	registry *registry.SpecificationRegistry
}

// New returns a Validator backed by reg.
func New(reg *registry.SpecificationRegistry) *Validator {
	return &Validator{registry: reg}
}

// Validate checks the document's structure without a reference.
func (v *Validator) Validate(doc openapi.Document) *validation.Result {
	return ValidateStructure(doc, "")
}

// ValidateAgainst validates the document against a registered reference.
func (v *Validator) ValidateAgainst(doc openapi.Document, key openapi.SpecificationKey, strict bool) (*validation.Result, error) {
	entry, err := v.registry.Get(key)
	if err != nil {
		return nil, err
	}
	return ValidateAgainstReference(doc, entry.Document, strict), nil
}

// ValidateAgainstLatest validates the document against the newest
// registered reference of a specification type.
func (v *Validator) ValidateAgainstLatest(doc openapi.Document, specType openapi.SpecificationType) (*validation.Result, error) {
	_, entry, err := v.registry.GetLatest(specType)
	if err != nil {
		return nil, err
	}
	return ValidateAgainstReference(doc, entry.Document, false), nil
}
