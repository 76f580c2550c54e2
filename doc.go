// Package ogcapiregistry provides tools for validating OpenAPI documents that
// describe OGC API implementations against the OGC API specification family.
//
// An OGC API implementation publishes an OpenAPI v3 document plus a list of
// conformance class URIs that declare which specification profiles it claims
// to satisfy (Features, Tiles, Processes, Records, Coverages, EDR, Maps,
// Styles, Routes, or the generic Common baseline). This module inspects the
// document's declared paths, operations, and parameters and reports how well
// they match the declared conformance classes.
//
// # Overview
//
// The library consists of the following packages:
//
//   - conformance: conformance class URIs, OGC API family detection, and
//     specification keys
//   - strategy: per-family validation strategies, composite aggregation, and
//     the strategy registry with conformance auto-detection
//   - validation: severity-partitioned validation results
//   - openapi: the parsed document model and JSON/YAML content parsing
//   - validator: structural validation of the OpenAPI envelope and validation
//     against registered reference specifications
//   - registry: in-memory registries of reference specification documents
//   - client: HTTP client for fetching remote OpenAPI and conformance
//     documents
//   - report: JSON report rendering for CLI and programmatic consumers
//
// # Quick Start
//
// Validate a parsed OpenAPI document against declared conformance classes:
//
//	import "github.com/francbartoli/ogcapi-registry/strategy"
//
//	result := strategy.Validate(doc, []string{
//	    "http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
//	})
//	if !result.IsCompliant() {
//	    fmt.Printf("non-compliant: %d critical findings\n", result.Summary().Critical)
//	}
//
// Fetch a live server's API description and conformance declaration:
//
//	import "github.com/francbartoli/ogcapi-registry/client"
//
//	c := client.New()
//	doc, meta, err := c.Fetch(ctx, "https://demo.ldproxy.net/daraa/api?f=json")
//
// # Severity Model
//
// Findings carry one of three severities:
//
//   - Critical: violations of the mandatory core baseline, such as a missing
//     landing page or required resource path
//   - Warning: gaps tied to a declared-but-optional conformance class, such
//     as declaring CRS support without the crs query parameter
//   - Info: purely advisory gaps, kept in a separate warnings collection that
//     never affects validity or compliance
//
// A result can be compliant (no critical findings) while not valid (warning
// findings present); both signals are exposed independently.
package ogcapiregistry
