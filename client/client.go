// Package client fetches OpenAPI documents over HTTP for registration and
// validation.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ogcapiregistry "github.com/francbartoli/ogcapi-registry"
	"github.com/francbartoli/ogcapi-registry/ogcerrors"
	"github.com/francbartoli/ogcapi-registry/openapi"
	"github.com/francbartoli/ogcapi-registry/registry"
)

// DefaultTimeout bounds a fetch when no custom HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Client fetches and parses remote OpenAPI documents.
type Client struct {
	// HTTPClient is used for requests when set; otherwise a default
	// client with DefaultTimeout is used.
	HTTPClient *http.Client
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, e.g. to configure TLS or a
// different timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithUserAgent sets the User-Agent header for requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// New returns a Client with the given options applied.
func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return ogcapiregistry.UserAgent()
}

// Fetch retrieves and parses the OpenAPI document at url. The returned
// metadata records the source URL, the response Content-Type and ETag, and
// the fetch time. Non-2xx responses fail with a FetchError.
func (c *Client) Fetch(ctx context.Context, url string) (openapi.Document, registry.SpecificationMetadata, error) {
	var meta registry.SpecificationMetadata

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, meta, &ogcerrors.FetchError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "application/vnd.oai.openapi+json, application/json, application/yaml, */*")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, meta, &ogcerrors.FetchError{URL: url, Message: "request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, meta, &ogcerrors.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, meta, &ogcerrors.FetchError{URL: url, Message: "failed to read response body", Cause: err}
	}

	meta = registry.SpecificationMetadata{
		SourceURL:   url,
		ContentType: resp.Header.Get("Content-Type"),
		ETag:        resp.Header.Get("ETag"),
		FetchedAt:   time.Now().UTC(),
	}

	doc, err := openapi.ParseContent(data, sourceLabel(url, meta.ContentType))
	if err != nil {
		return nil, meta, err
	}
	return doc, meta, nil
}

// FetchAndRegister fetches the document at url and registers it in reg
// under its own specification key, attaching the fetch metadata.
func (c *Client) FetchAndRegister(ctx context.Context, url string, reg *registry.SpecificationRegistry, opts ...registry.RegisterOption) (openapi.SpecificationKey, error) {
	doc, meta, err := c.Fetch(ctx, url)
	if err != nil {
		return openapi.SpecificationKey{}, err
	}
	opts = append([]registry.RegisterOption{registry.WithMetadata(meta)}, opts...)
	return reg.Register(doc, opts...)
}

// sourceLabel names the parse source for error messages, hinting at the
// format from the Content-Type when the URL has no telling extension.
func sourceLabel(url, contentType string) string {
	lower := strings.ToLower(url)
	if strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return url
	}
	if ct := strings.ToLower(contentType); strings.Contains(ct, "yaml") {
		return url + " (yaml)"
	}
	return url
}
