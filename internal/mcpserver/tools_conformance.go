package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/francbartoli/ogcapi-registry/client"
	"github.com/francbartoli/ogcapi-registry/report"
)

type conformanceInput struct {
	URIs []string `json:"uris,omitempty" jsonschema:"Conformance class URIs to analyze"`
	URL  string   `json:"url,omitempty"  jsonschema:"URL of a /conformance endpoint returning a conformsTo array"`
}

func handleConformance(ctx context.Context, _ *mcp.CallToolRequest, input conformanceInput) (*mcp.CallToolResult, report.ConformanceAnalysis, error) {
	uris := input.URIs
	if len(uris) == 0 && input.URL != "" {
		doc, _, err := client.New().Fetch(ctx, input.URL)
		if err != nil {
			return errResult(err), report.ConformanceAnalysis{}, nil
		}
		uris = doc.ConformsTo()
	}
	if len(uris) == 0 {
		return errResult(errors.New("provide conformance URIs or a /conformance endpoint URL")), report.ConformanceAnalysis{}, nil
	}
	return nil, report.AnalyzeConformance(uris), nil
}
