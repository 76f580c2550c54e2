// Package registry stores reference OpenAPI documents and OGC API
// specification records for later validation.
//
// Two registries are provided. SpecificationRegistry keys parsed OpenAPI
// documents by their OpenAPI flavor and version. OGCSpecificationRegistry
// keys documents by OGC API specification (family, version, part) and adds
// version listing. Both are safe for concurrent use.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/ogcerrors"
	"github.com/francbartoli/ogcapi-registry/openapi"
)

// SpecificationMetadata records where and when a registered document came
// from.
type SpecificationMetadata struct {
	SourceURL   string
	ContentType string
	ETag        string
	FetchedAt   time.Time
}

// Entry is a registered document with its metadata.
type Entry struct {
	Document openapi.Document
	Metadata SpecificationMetadata
}

// RegisterOption configures a Register call.
type RegisterOption func(*registerOptions)

type registerOptions struct {
	metadata  SpecificationMetadata
	overwrite bool
}

// WithMetadata attaches source metadata to the registered document.
func WithMetadata(meta SpecificationMetadata) RegisterOption {
	return func(o *registerOptions) { o.metadata = meta }
}

// WithOverwrite allows replacing an existing entry for the same key.
func WithOverwrite() RegisterOption {
	return func(o *registerOptions) { o.overwrite = true }
}

func applyRegisterOptions(opts []RegisterOption) registerOptions {
	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SpecificationRegistry stores OpenAPI documents keyed by specification
// type and version.
type SpecificationRegistry struct {
	mu      sync.RWMutex
	entries map[openapi.SpecificationKey]Entry
}

// NewSpecificationRegistry returns an empty registry.
func NewSpecificationRegistry() *SpecificationRegistry {
	return &SpecificationRegistry{entries: make(map[openapi.SpecificationKey]Entry)}
}

// Register stores a document under its own specification key, derived from
// the document's openapi version member. Registering a key that already
// exists fails with an AlreadyExistsError unless WithOverwrite is given.
func (r *SpecificationRegistry) Register(doc openapi.Document, opts ...RegisterOption) (openapi.SpecificationKey, error) {
	key, err := openapi.KeyForDocument(doc)
	if err != nil {
		return openapi.SpecificationKey{}, err
	}
	return key, r.RegisterAs(key, doc, opts...)
}

// RegisterAs stores a document under an explicit key.
func (r *SpecificationRegistry) RegisterAs(key openapi.SpecificationKey, doc openapi.Document, opts ...RegisterOption) error {
	o := applyRegisterOptions(opts)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists && !o.overwrite {
		return &ogcerrors.AlreadyExistsError{SpecType: string(key.Type), Version: key.Version}
	}
	r.entries[key] = Entry{Document: doc, Metadata: o.metadata}
	return nil
}

// Get returns the entry for a key, or a NotFoundError.
func (r *SpecificationRegistry) Get(key openapi.SpecificationKey) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key]
	if !ok {
		return Entry{}, &ogcerrors.NotFoundError{SpecType: string(key.Type), Version: key.Version}
	}
	return entry, nil
}

// GetLatest returns the entry with the highest version for a specification
// type.
func (r *SpecificationRegistry) GetLatest(specType openapi.SpecificationType) (openapi.SpecificationKey, Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		best  openapi.SpecificationKey
		found bool
	)
	for key := range r.entries {
		if key.Type != specType {
			continue
		}
		if !found || conformance.CompareVersions(key.Version, best.Version) > 0 {
			best = key
			found = true
		}
	}
	if !found {
		return openapi.SpecificationKey{}, Entry{}, &ogcerrors.NotFoundError{SpecType: string(specType)}
	}
	return best, r.entries[best], nil
}

// Exists reports whether a key is registered.
func (r *SpecificationRegistry) Exists(key openapi.SpecificationKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Remove deletes an entry, failing with a NotFoundError when absent.
func (r *SpecificationRegistry) Remove(key openapi.SpecificationKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return &ogcerrors.NotFoundError{SpecType: string(key.Type), Version: key.Version}
	}
	delete(r.entries, key)
	return nil
}

// Keys returns all registered keys sorted by type then descending version.
func (r *SpecificationRegistry) Keys() []openapi.SpecificationKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]openapi.SpecificationKey, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return conformance.CompareVersions(keys[i].Version, keys[j].Version) > 0
	})
	return keys
}

// Len returns the number of registered entries.
func (r *SpecificationRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes every entry.
func (r *SpecificationRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[openapi.SpecificationKey]Entry)
}
