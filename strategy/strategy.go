// Package strategy implements conformance profile validation for OGC API
// implementations.
//
// Each OGC API family (Common, Features, Tiles, Processes, ...) has a
// profile describing which paths, operations, and query parameters an
// implementation must or should declare in its OpenAPI document, depending
// on the conformance classes it claims. A Registry scores every profile
// against the declared classes, selects the best match (or a Composite when
// several families apply), and runs its validation.
//
// Quick start:
//
//	doc, _ := openapi.ParseContent(data, "api.json")
//	result := strategy.Validate(doc, []string{
//		"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
//	})
//	if !result.IsCompliant() {
//		for _, f := range result.CriticalErrors() {
//			fmt.Println(f)
//		}
//	}
package strategy

import (
	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/openapi"
	"github.com/francbartoli/ogcapi-registry/validation"
)

// Strategy validates an OpenAPI document against one conformance profile.
//
// The interface is structural: anything implementing these five methods can
// be registered, so callers may plug in profiles for families this module
// does not know about.
type Strategy interface {
	// Family is the OGC API family this strategy covers.
	Family() conformance.Family

	// Matches reports whether this strategy applies to the declared
	// conformance classes. A strategy with no required patterns never
	// matches.
	Matches(classes []conformance.Class) bool

	// Score ranks how well this strategy fits the declared classes:
	// +10 per required pattern hit, +1 per optional pattern hit. Used
	// only to order competing matches.
	Score(classes []conformance.Class) int

	// RequiredPaths returns the path templates the document must declare
	// given the conformance classes, sorted lexically.
	RequiredPaths(classes []conformance.Class) []string

	// RequiredOperations maps required path templates to the HTTP methods
	// each must support.
	RequiredOperations(classes []conformance.Class) map[string][]string

	// Validate checks the document against this profile's requirements.
	Validate(doc openapi.Document, classes []conformance.Class) *validation.Result
}
