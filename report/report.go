// Package report renders validation results and conformance analyses into
// serializable shapes for the CLI and the MCP server.
package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/validation"
)

// Item is one finding in a report.
type Item struct {
	Path             string `json:"path,omitempty" yaml:"path,omitempty"`
	Message          string `json:"message" yaml:"message"`
	Kind             string `json:"kind" yaml:"kind"`
	Severity         string `json:"severity" yaml:"severity"`
	ConformanceClass string `json:"conformance_class,omitempty" yaml:"conformance_class,omitempty"`
}

// Report is the serializable outcome of a validation run.
type Report struct {
	Valid            bool               `json:"valid" yaml:"valid"`
	Compliant        bool               `json:"compliant" yaml:"compliant"`
	ValidatedAgainst string             `json:"validated_against,omitempty" yaml:"validated_against,omitempty"`
	Summary          validation.Summary `json:"summary" yaml:"summary"`
	CriticalErrors   []Item             `json:"critical_errors,omitempty" yaml:"critical_errors,omitempty"`
	WarningErrors    []Item             `json:"warning_errors,omitempty" yaml:"warning_errors,omitempty"`
	InfoErrors       []Item             `json:"info_errors,omitempty" yaml:"info_errors,omitempty"`
	Warnings         []Item             `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// FromResult converts a validation result into a Report.
func FromResult(result *validation.Result) Report {
	return Report{
		Valid:            result.IsValid(),
		Compliant:        result.IsCompliant(),
		ValidatedAgainst: result.ValidatedAgainst,
		Summary:          result.Summary(),
		CriticalErrors:   items(result.CriticalErrors()),
		WarningErrors:    items(result.WarningErrors()),
		InfoErrors:       items(result.InfoErrors()),
		Warnings:         items(result.Warnings),
	}
}

func items(fs []validation.Finding) []Item {
	if len(fs) == 0 {
		return nil
	}
	out := make([]Item, 0, len(fs))
	for _, f := range fs {
		out = append(out, Item{
			Path:             f.Path,
			Message:          f.Message,
			Kind:             string(f.Kind),
			Severity:         f.Severity.String(),
			ConformanceClass: f.ConformanceClass,
		})
	}
	return out
}

// ClassInfo describes one conformance class inside an analysis.
type ClassInfo struct {
	URI   string `json:"uri" yaml:"uri"`
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	Core  bool   `json:"is_core" yaml:"is_core"`
}

// SpecificationInfo groups the classes of one versioned specification.
type SpecificationInfo struct {
	Specification string      `json:"specification" yaml:"specification"`
	Family        string      `json:"family" yaml:"family"`
	DisplayName   string      `json:"display_name" yaml:"display_name"`
	Version       string      `json:"version,omitempty" yaml:"version,omitempty"`
	Part          int         `json:"part,omitempty" yaml:"part,omitempty"`
	Classes       []ClassInfo `json:"classes" yaml:"classes"`
	HasCore       bool        `json:"has_core" yaml:"has_core"`
}

// ConformanceAnalysis summarizes a set of declared conformance class URIs
// by specification.
type ConformanceAnalysis struct {
	Total          int                 `json:"total" yaml:"total"`
	Specifications []SpecificationInfo `json:"specifications" yaml:"specifications"`
	Unknown        []string            `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

var titleCaser = cases.Title(language.English)

// AnalyzeConformance parses and groups conformance class URIs into a
// per-specification breakdown.
func AnalyzeConformance(uris []string) ConformanceAnalysis {
	classes := conformance.ParseClasses(uris)
	analysis := ConformanceAnalysis{Total: len(classes)}

	grouped := conformance.GroupBySpecification(classes)
	for _, key := range conformance.SpecificationKeys(classes) {
		info := SpecificationInfo{
			Specification: key.String(),
			Family:        string(key.Family),
			DisplayName:   key.Family.DisplayName(),
			Version:       key.Version,
			Part:          key.Part,
		}
		for _, c := range grouped[key] {
			info.Classes = append(info.Classes, ClassInfo{
				URI:   c.URI,
				Name:  c.Name,
				Title: classTitle(c.Name),
				Core:  c.Core,
			})
			if c.Core {
				info.HasCore = true
			}
		}
		analysis.Specifications = append(analysis.Specifications, info)
	}

	for _, c := range classes {
		if c.Family == "" {
			analysis.Unknown = append(analysis.Unknown, c.URI)
		}
	}
	return analysis
}

// classTitle turns a conformance class name like "ogc-process-description"
// into "Ogc Process Description".
func classTitle(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}
