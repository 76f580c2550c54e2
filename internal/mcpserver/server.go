// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes OGC API conformance validation as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	ogcapiregistry "github.com/francbartoli/ogcapi-registry"
)

const serverInstructions = `ogcapi-registry MCP server: validates OpenAPI documents against OGC API conformance profiles.

Tools:
- validate: check an OpenAPI document (file, URL, or inline content) against the OGC API profiles implied by its declared conformance classes. When no classes are supplied they are inferred from the document's path shapes.
- conformance: analyze a list of conformance class URIs (or the conformsTo member fetched from a /conformance endpoint URL) and group them by specification.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "ogcapi-registry", Version: ogcapiregistry.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI document as an OGC API implementation. Checks document structure, then the paths, operations, and parameters required by the OGC API profiles matching the declared conformance classes. Supply conformance URIs explicitly, or omit them to use the document's own hints or path-shape inference.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "conformance",
		Description: "Analyze OGC API conformance class URIs: group them by specification (family, version, part), mark core classes, and list unrecognized URIs. Provide the URIs inline or a URL to a /conformance endpoint returning a conformsTo array.",
	}, handleConformance)
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
