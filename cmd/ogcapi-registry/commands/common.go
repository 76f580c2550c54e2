// Package commands provides CLI command handlers for ogcapi-registry.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/francbartoli/ogcapi-registry/client"
	"github.com/francbartoli/ogcapi-registry/ogcerrors"
	"github.com/francbartoli/ogcapi-registry/openapi"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrNotCompliant signals a completed validation whose subject is not
// compliant. The caller maps it to a non-zero exit code without printing a
// further error message.
var ErrNotCompliant = errors.New("document is not compliant")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &ogcerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
		}
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return &ogcerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: "structured output supports json and yaml only",
		}
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ReadDocument loads an OpenAPI document from a file path, a URL, or stdin
// when the path is "-".
func ReadDocument(ctx context.Context, path string) (openapi.Document, error) {
	if isURL(path) {
		doc, _, err := client.New().Fetch(ctx, path)
		return doc, err
	}

	var (
		data []byte
		err  error
	)
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return openapi.ParseContent(data, "stdin")
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return openapi.ParseContent(data, path)
}

// stringSliceFlag collects repeated flag values.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string { return strings.Join(*s, ",") }

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}
