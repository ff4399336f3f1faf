package repositories

import (
	"fmt"
	"strings"

	domainRepos "github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// ManifestRegistry manages all registered manifest readers.
type ManifestRegistry struct {
	readers map[string]domainRepos.ManifestRepository
	order   []string
	// fallback is used when no reader detects the file
	fallback string
}

// NewManifestRegistry creates an empty manifest registry.
func NewManifestRegistry() *ManifestRegistry {
	return &ManifestRegistry{
		readers: make(map[string]domainRepos.ManifestRepository),
	}
}

// Register adds a reader under its name. The first registered reader is the
// fallback for files no reader detects.
func (r *ManifestRegistry) Register(m domainRepos.ManifestRepository) {
	if _, exists := r.readers[m.Name()]; !exists {
		r.order = append(r.order, m.Name())
	}
	r.readers[m.Name()] = m
	if r.fallback == "" {
		r.fallback = m.Name()
	}
}

// Get returns the reader with the given name, or nil if not registered.
func (r *ManifestRegistry) Get(name string) domainRepos.ManifestRepository {
	return r.readers[name]
}

// Resolve picks the reader for path: the named format when given, otherwise
// the first reader (in registration order) that detects the file.
func (r *ManifestRegistry) Resolve(format, path string) (domainRepos.ManifestRepository, error) {
	if format != "" {
		reader := r.Get(format)
		if reader == nil {
			return nil, fmt.Errorf(
				"unknown manifest format: %q (registered: %s)",
				format, strings.Join(r.Names(), ", "),
			)
		}
		return reader, nil
	}

	for _, name := range r.order {
		if reader := r.readers[name]; reader.Detect(path) {
			return reader, nil
		}
	}

	if r.fallback == "" {
		return nil, fmt.Errorf("no manifest reader registered for %s", path)
	}
	return r.readers[r.fallback], nil
}

// Names returns the registered format names in registration order.
func (r *ManifestRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
