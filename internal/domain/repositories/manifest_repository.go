package repositories

import (
	"iter"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

// ManifestRepository reads a dependency manifest format.
type ManifestRepository interface {
	// Name returns the format identifier (e.g. "requirements", "pyproject").
	Name() string

	// Detect returns true if the file at path is written in this format.
	Detect(path string) bool

	// Entries returns a lazy, single-pass sequence over the manifest entries.
	// A read failure is yielded once as a non-nil error and ends the sequence.
	Entries(path, commentMarker string) iter.Seq2[entities.Entry, error]
}
