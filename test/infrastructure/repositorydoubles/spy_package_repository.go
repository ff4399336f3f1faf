//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// SpyPackageRepository implements repositories.PackageRepository as a configurable spy.
// Packages missing from Statuses are reported as not installed.
type SpyPackageRepository struct {
	// --- Query ---
	Statuses   map[string]entities.PackageStatus // name -> status
	QueryErrs  map[string]error                  // name -> error
	QueryCalls []string

	// --- Install ---
	InstallErrs  map[string]error // requirement -> error
	InstallCalls []string
	Interpreters []string

	// --- MarkerApplies ---
	MarkerResults map[string]bool  // marker -> applies, unlisted markers apply
	MarkerErrs    map[string]error // marker -> error
	MarkerCalls   []string
}

var _ repositories.PackageRepository = (*SpyPackageRepository)(nil)

func (s *SpyPackageRepository) Query(
	_ context.Context,
	interpreter, name string,
) (entities.PackageStatus, error) {
	s.QueryCalls = append(s.QueryCalls, name)
	s.Interpreters = append(s.Interpreters, interpreter)
	if err, ok := s.QueryErrs[name]; ok {
		return entities.PackageStatus{}, err
	}
	return s.Statuses[name], nil
}

func (s *SpyPackageRepository) Install(
	_ context.Context,
	interpreter, requirement string,
) error {
	s.InstallCalls = append(s.InstallCalls, requirement)
	s.Interpreters = append(s.Interpreters, interpreter)
	return s.InstallErrs[requirement]
}

func (s *SpyPackageRepository) MarkerApplies(
	_ context.Context,
	_, marker string,
) (bool, error) {
	s.MarkerCalls = append(s.MarkerCalls, marker)
	if err, ok := s.MarkerErrs[marker]; ok {
		return false, err
	}
	if applies, ok := s.MarkerResults[marker]; ok {
		return applies, nil
	}
	return true, nil
}
