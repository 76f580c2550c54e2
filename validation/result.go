// Package validation defines the result model shared by all conformance
// validation in this module.
//
// A Result collects findings produced while checking an OpenAPI document
// against one or more OGC API conformance profiles. Findings carry a three
// level severity (critical, warning, info); purely informational notes are
// kept in a separate Warnings collection that never affects validity,
// compliance, or the summary counts.
package validation

import (
	"github.com/francbartoli/ogcapi-registry/internal/findings"
	"github.com/francbartoli/ogcapi-registry/internal/severity"
)

// Finding is a single validation observation. It is an alias into the
// internal findings package so callers can construct and inspect findings
// without importing internal paths.
type Finding = findings.Finding

// Result is the outcome of validating a document against a conformance
// profile.
type Result struct {
	// Successful reports whether validation ran without any findings.
	// Entries in the Warnings collection never affect it.
	Successful bool
	// Findings holds the errors discovered, critical and warning severity.
	Findings []Finding
	// Warnings holds informational notes that do not affect compliance.
	Warnings []Finding
	// ValidatedAgainst names the profile or specification the document was
	// checked against, e.g. "OGC API - Features Part 1 v1.0".
	ValidatedAgainst string
}

// Success returns a result with no findings.
func Success(validatedAgainst string) *Result {
	return &Result{Successful: true, ValidatedAgainst: validatedAgainst}
}

// Failure returns a result carrying the given findings and warnings.
func Failure(validatedAgainst string, errs, warnings []Finding) *Result {
	return &Result{
		Successful:       len(errs) == 0,
		Findings:         errs,
		Warnings:         warnings,
		ValidatedAgainst: validatedAgainst,
	}
}

// AddFinding appends a finding and clears the success flag.
func (r *Result) AddFinding(f Finding) {
	r.Findings = append(r.Findings, f)
	r.Successful = false
}

// AddWarning appends an informational note. Warnings never affect the
// success flag, validity, or compliance.
func (r *Result) AddWarning(f Finding) {
	r.Warnings = append(r.Warnings, f)
}

// Merge folds other's findings and warnings into r. The receiver keeps its
// own ValidatedAgainst label.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Findings = append(r.Findings, other.Findings...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Successful {
		r.Successful = false
	}
}

// IsValid reports whether validation produced no findings. The advisory
// Warnings collection is not considered.
func (r *Result) IsValid() bool {
	return len(r.Findings) == 0
}

// IsCompliant reports whether the document satisfies the profile: no
// critical findings. Warnings and informational notes do not break
// compliance.
func (r *Result) IsCompliant() bool {
	return !r.HasCriticalErrors()
}

// HasCriticalErrors reports whether any finding is critical.
func (r *Result) HasCriticalErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == severity.SeverityCritical {
			return true
		}
	}
	return false
}

// BySeverity returns the findings with the given severity.
func (r *Result) BySeverity(s severity.Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// CriticalErrors returns the critical findings.
func (r *Result) CriticalErrors() []Finding {
	return r.BySeverity(severity.SeverityCritical)
}

// WarningErrors returns the warning findings.
func (r *Result) WarningErrors() []Finding {
	return r.BySeverity(severity.SeverityWarning)
}

// InfoErrors returns the informational findings recorded as errors rather
// than as separate warnings.
func (r *Result) InfoErrors() []Finding {
	return r.BySeverity(severity.SeverityInfo)
}

// Summary holds per-severity finding counts. The separate Warnings
// collection is excluded from every count.
type Summary struct {
	Critical int `json:"critical" yaml:"critical"`
	Warning  int `json:"warning" yaml:"warning"`
	Info     int `json:"info" yaml:"info"`
	Total    int `json:"total" yaml:"total"`
}

// Summary counts the findings by severity.
func (r *Result) Summary() Summary {
	var s Summary
	for _, f := range r.Findings {
		switch f.Severity {
		case severity.SeverityCritical:
			s.Critical++
		case severity.SeverityWarning:
			s.Warning++
		case severity.SeverityInfo:
			s.Info++
		}
	}
	s.Total = len(r.Findings)
	return s
}
