// Package severity provides severity level constants for findings reported
// by the strategy, validator, and registry packages.
//
// The three severity levels are ordered from least to most severe:
// Info < Warning < Critical
//
//   - SeverityInfo: purely advisory gaps not tied to a blocking requirement
//   - SeverityWarning: gaps tied to a declared-but-optional conformance class
//   - SeverityCritical: violations of the mandatory core baseline or missing
//     universally-required structure
package severity

// Severity indicates the severity level of a finding.
type Severity int

const (
	// SeverityInfo indicates a purely advisory gap. Info findings live in a
	// result's warnings collection and never affect validity or compliance.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a gap tied to a declared-but-optional
	// conformance class that should be addressed but does not block
	// compliance.
	SeverityWarning

	// SeverityCritical indicates a violation of the mandatory core baseline,
	// such as a missing required resource path or operation.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
