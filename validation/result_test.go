package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francbartoli/ogcapi-registry/internal/findings"
	"github.com/francbartoli/ogcapi-registry/internal/severity"
)

func critical(path, msg string) Finding {
	return Finding{Path: path, Message: msg, Kind: findings.KindMissingRequiredPath, Severity: severity.SeverityCritical}
}

func warning(path, msg string) Finding {
	return Finding{Path: path, Message: msg, Kind: findings.KindMissingParameter, Severity: severity.SeverityWarning}
}

func info(path, msg string) Finding {
	return Finding{Path: path, Message: msg, Kind: findings.KindMissingParameter, Severity: severity.SeverityInfo}
}

func TestSuccess(t *testing.T) {
	r := Success("OGC API - Features Part 1 v1.0")
	assert.True(t, r.Successful)
	assert.True(t, r.IsValid())
	assert.True(t, r.IsCompliant())
	assert.Equal(t, "OGC API - Features Part 1 v1.0", r.ValidatedAgainst)
	assert.Equal(t, Summary{}, r.Summary())
}

func TestValidVersusCompliant(t *testing.T) {
	t.Run("warnings break validity not compliance", func(t *testing.T) {
		r := Success("features")
		r.AddFinding(warning("/collections", "missing bbox parameter"))
		assert.False(t, r.IsValid())
		assert.True(t, r.IsCompliant())
		assert.False(t, r.HasCriticalErrors())
	})

	t.Run("critical breaks both", func(t *testing.T) {
		r := Success("features")
		r.AddFinding(critical("/conformance", "missing required path"))
		assert.False(t, r.IsValid())
		assert.False(t, r.IsCompliant())
		assert.True(t, r.HasCriticalErrors())
	})

	t.Run("advisory warnings break nothing", func(t *testing.T) {
		r := Success("features")
		r.AddWarning(info("/collections/{collectionId}/items", "filter parameter not declared"))
		assert.True(t, r.Successful)
		assert.True(t, r.IsValid())
		assert.True(t, r.IsCompliant())
	})
}

func TestWarningsOnlyResultStaysValid(t *testing.T) {
	r := Failure("features", nil, []Finding{
		info("/a", "one"),
		info("/b", "two"),
	})
	assert.True(t, r.Successful)
	assert.True(t, r.IsValid())
	assert.True(t, r.IsCompliant())
	assert.Equal(t, Summary{}, r.Summary())
	assert.Len(t, r.Warnings, 2)
}

func TestSeverityFilters(t *testing.T) {
	r := Failure("features", []Finding{
		critical("/a", "one"),
		warning("/b", "two"),
		critical("/c", "three"),
		info("/d", "four"),
	}, nil)

	assert.Len(t, r.CriticalErrors(), 2)
	assert.Len(t, r.WarningErrors(), 1)
	assert.Len(t, r.InfoErrors(), 1)
	assert.False(t, r.Successful)
}

func TestSummaryExcludesWarnings(t *testing.T) {
	r := Failure("features", []Finding{
		critical("/a", "one"),
		warning("/b", "two"),
	}, []Finding{
		info("/c", "informational only"),
	})

	s := r.Summary()
	assert.Equal(t, 1, s.Critical)
	assert.Equal(t, 1, s.Warning)
	assert.Equal(t, 0, s.Info)
	require.Equal(t, 2, s.Total)
	assert.Len(t, r.Warnings, 1)
}

func TestMerge(t *testing.T) {
	r := Success("composite")
	other := Failure("features", []Finding{critical("/a", "one")}, []Finding{info("/b", "note")})
	r.Merge(other)

	assert.False(t, r.Successful)
	assert.Len(t, r.Findings, 1)
	assert.Len(t, r.Warnings, 1)
	assert.Equal(t, "composite", r.ValidatedAgainst)

	r.Merge(nil)
	assert.Len(t, r.Findings, 1)
}
