//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// StubExecutableRepository resolves only the names listed in Paths.
type StubExecutableRepository struct {
	Paths       map[string]string // name -> resolved path
	LocateCalls [][]string
}

var _ repositories.ExecutableRepository = (*StubExecutableRepository)(nil)

func (s *StubExecutableRepository) Locate(candidates ...string) (string, error) {
	s.LocateCalls = append(s.LocateCalls, candidates)
	for _, name := range candidates {
		if path, ok := s.Paths[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("none of %s found", strings.Join(candidates, ", "))
}
