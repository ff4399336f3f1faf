package system

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

// PathExecutableRepository resolves executables through PATH, then through a
// list of well-known install directories.
type PathExecutableRepository struct {
	fallbackDirs []string
}

// NewPathExecutableRepository creates a resolver that falls back to the usual
// interpreter install locations.
func NewPathExecutableRepository() repositories.ExecutableRepository {
	dirs := []string{
		"/usr/bin",
		"/usr/local/bin",
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		dirs = append(dirs, filepath.Join(home, ".pyenv", "shims"))
	}

	return NewPathExecutableRepositoryWithDirs(dirs)
}

// NewPathExecutableRepositoryWithDirs creates a resolver with explicit fallback directories.
func NewPathExecutableRepositoryWithDirs(dirs []string) *PathExecutableRepository {
	return &PathExecutableRepository{fallbackDirs: dirs}
}

// Locate returns the first candidate found on PATH, or in a fallback
// directory when PATH has none of them.
func (r *PathExecutableRepository) Locate(candidates ...string) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no executable candidates given")
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return absolute(path), nil
		}
	}

	for _, name := range candidates {
		// explicit paths were already handled by LookPath
		if strings.ContainsRune(name, filepath.Separator) {
			continue
		}
		for _, dir := range r.fallbackDirs {
			if p := filepath.Join(dir, name); isExecutable(p) {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("none of %s found", strings.Join(candidates, ", "))
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
