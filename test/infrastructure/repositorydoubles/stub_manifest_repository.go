//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"iter"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// StubManifestRepository serves in-memory manifest lines and counts how many
// entries the consumer actually pulled.
type StubManifestRepository struct {
	FormatName   string
	DetectResult bool
	Lines        []string
	ReadErr      error // yielded after all lines when set

	YieldedCount int
	OpenedPaths  []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Name() string {
	if s.FormatName == "" {
		return "stub"
	}
	return s.FormatName
}

func (s *StubManifestRepository) Detect(_ string) bool { return s.DetectResult }

func (s *StubManifestRepository) Entries(path, commentMarker string) iter.Seq2[entities.Entry, error] {
	return func(yield func(entities.Entry, error) bool) {
		s.OpenedPaths = append(s.OpenedPaths, path)
		for i, line := range s.Lines {
			s.YieldedCount++
			if !yield(entities.ParseEntry(i+1, line, commentMarker), nil) {
				return
			}
		}
		if s.ReadErr != nil {
			yield(entities.Entry{}, s.ReadErr)
		}
	}
}
