package mcpserver

import (
	"context"
	"errors"
	"os"

	"github.com/francbartoli/ogcapi-registry/client"
	"github.com/francbartoli/ogcapi-registry/openapi"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

func (s specInput) resolve(ctx context.Context) (openapi.Document, error) {
	set := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of file, url, or content must be provided")
	}

	switch {
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return nil, err
		}
		return openapi.ParseContent(data, s.File)
	case s.URL != "":
		doc, _, err := client.New().Fetch(ctx, s.URL)
		return doc, err
	default:
		return openapi.ParseContent([]byte(s.Content), "inline")
	}
}
