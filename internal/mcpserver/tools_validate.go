package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/francbartoli/ogcapi-registry/report"
	"github.com/francbartoli/ogcapi-registry/strategy"
	"github.com/francbartoli/ogcapi-registry/validator"
)

type validateInput struct {
	Spec        specInput `json:"spec"                  jsonschema:"The OpenAPI document to validate"`
	Conformance []string  `json:"conformance,omitempty" jsonschema:"Conformance class URIs the implementation declares. Omitted: use document hints or infer from path shapes."`
	NoWarnings  bool      `json:"no_warnings,omitempty" jsonschema:"Suppress warnings and informational notes from the output"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, report.Report, error) {
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), report.Report{}, nil
	}

	structure := validator.ValidateStructure(doc, "")
	if structure.HasCriticalErrors() {
		return nil, report.FromResult(structure), nil
	}

	var conformanceArg any
	if len(input.Conformance) > 0 {
		conformanceArg = input.Conformance
	}
	result := strategy.Validate(doc, conformanceArg)
	result.Merge(structure)

	out := report.FromResult(result)
	if input.NoWarnings {
		out.WarningErrors = nil
		out.InfoErrors = nil
		out.Warnings = nil
	}
	return nil, out, nil
}
