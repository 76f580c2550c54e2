package registry

import (
	"sort"
	"sync"

	"github.com/francbartoli/ogcapi-registry/conformance"
	"github.com/francbartoli/ogcapi-registry/ogcerrors"
	"github.com/francbartoli/ogcapi-registry/openapi"
)

// OGCSpecificationRegistry stores reference OpenAPI documents keyed by OGC
// API specification: family, version, and part.
type OGCSpecificationRegistry struct {
	mu      sync.RWMutex
	entries map[conformance.SpecificationKey]Entry
}

// NewOGCSpecificationRegistry returns an empty registry.
func NewOGCSpecificationRegistry() *OGCSpecificationRegistry {
	return &OGCSpecificationRegistry{entries: make(map[conformance.SpecificationKey]Entry)}
}

// Register stores a document under the given key. Registering an existing
// key fails with an AlreadyExistsError unless WithOverwrite is given.
func (r *OGCSpecificationRegistry) Register(key conformance.SpecificationKey, doc openapi.Document, opts ...RegisterOption) error {
	o := applyRegisterOptions(opts)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists && !o.overwrite {
		return &ogcerrors.AlreadyExistsError{SpecType: string(key.Family), Version: key.Version}
	}
	r.entries[key] = Entry{Document: doc, Metadata: o.metadata}
	return nil
}

// Get returns the entry for a key, or a NotFoundError.
func (r *OGCSpecificationRegistry) Get(key conformance.SpecificationKey) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key]
	if !ok {
		return Entry{}, &ogcerrors.NotFoundError{SpecType: string(key.Family), Version: key.Version}
	}
	return entry, nil
}

// GetLatest returns the highest-version entry for a family and part.
func (r *OGCSpecificationRegistry) GetLatest(family conformance.Family, part int) (conformance.SpecificationKey, Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		best  conformance.SpecificationKey
		found bool
	)
	for key := range r.entries {
		if key.Family != family || key.Part != part {
			continue
		}
		if !found || conformance.CompareVersions(key.Version, best.Version) > 0 {
			best = key
			found = true
		}
	}
	if !found {
		return conformance.SpecificationKey{}, Entry{}, &ogcerrors.NotFoundError{SpecType: string(family)}
	}
	return best, r.entries[best], nil
}

// Exists reports whether a key is registered.
func (r *OGCSpecificationRegistry) Exists(key conformance.SpecificationKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Remove deletes an entry, failing with a NotFoundError when absent.
func (r *OGCSpecificationRegistry) Remove(key conformance.SpecificationKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return &ogcerrors.NotFoundError{SpecType: string(key.Family), Version: key.Version}
	}
	delete(r.entries, key)
	return nil
}

// Keys returns all registered keys sorted by family, part, then
// descending version.
func (r *OGCSpecificationRegistry) Keys() []conformance.SpecificationKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]conformance.SpecificationKey, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Family != keys[j].Family {
			return keys[i].Family < keys[j].Family
		}
		if keys[i].Part != keys[j].Part {
			return keys[i].Part < keys[j].Part
		}
		return conformance.CompareVersions(keys[i].Version, keys[j].Version) > 0
	})
	return keys
}

// ListVersions returns the registered versions for a family and part,
// newest first.
func (r *OGCSpecificationRegistry) ListVersions(family conformance.Family, part int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var versions []string
	for key := range r.entries {
		if key.Family == family && key.Part == part {
			versions = append(versions, key.Version)
		}
	}
	sort.Slice(versions, func(i, j int) bool {
		return conformance.CompareVersions(versions[i], versions[j]) > 0
	})
	return versions
}

// ListByFamily returns the keys registered for a family across all parts
// and versions, sorted like Keys.
func (r *OGCSpecificationRegistry) ListByFamily(family conformance.Family) []conformance.SpecificationKey {
	var keys []conformance.SpecificationKey
	for _, key := range r.Keys() {
		if key.Family == family {
			keys = append(keys, key)
		}
	}
	return keys
}

// Len returns the number of registered entries.
func (r *OGCSpecificationRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes every entry.
func (r *OGCSpecificationRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[conformance.SpecificationKey]Entry)
}
