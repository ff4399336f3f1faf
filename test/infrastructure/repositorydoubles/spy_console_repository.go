//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// SpyConsoleRepository records everything shown to the user.
type SpyConsoleRepository struct {
	Notices    []string
	Warnings   []string
	Errors     []string
	ClearCount int
	Prompts    []string
	Events     *[]string // shared ordering log, optional
}

var _ repositories.ConsoleRepository = (*SpyConsoleRepository)(nil)

func (s *SpyConsoleRepository) Notice(format string, args ...any) {
	s.Notices = append(s.Notices, fmt.Sprintf(format, args...))
}

func (s *SpyConsoleRepository) Warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *SpyConsoleRepository) Error(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

func (s *SpyConsoleRepository) Clear() {
	s.ClearCount++
	s.record("clear")
}

func (s *SpyConsoleRepository) Pause(prompt string) {
	s.Prompts = append(s.Prompts, prompt)
	s.record("pause")
}

func (s *SpyConsoleRepository) record(event string) {
	if s.Events != nil {
		*s.Events = append(*s.Events, event)
	}
}
