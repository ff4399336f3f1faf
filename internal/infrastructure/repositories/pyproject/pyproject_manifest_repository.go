package pyproject

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

const manifestName = entities.ManifestFormatPyproject

// document is the subset of pyproject.toml the launcher cares about.
type document struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// PyprojectManifestRepository reads the [project].dependencies array of a
// pyproject.toml file.
type PyprojectManifestRepository struct{}

// NewPyprojectManifestRepository creates a new pyproject.toml reader.
func NewPyprojectManifestRepository() repositories.ManifestRepository {
	return &PyprojectManifestRepository{}
}

func (r *PyprojectManifestRepository) Name() string { return manifestName }

// Detect returns true only for files named pyproject.toml.
func (r *PyprojectManifestRepository) Detect(path string) bool {
	return filepath.Base(path) == "pyproject.toml"
}

// Entries decodes the file on first iteration. Entry lines are 1-based
// positions in the dependencies array, not lines in the TOML file.
func (r *PyprojectManifestRepository) Entries(path, commentMarker string) iter.Seq2[entities.Entry, error] {
	return func(yield func(entities.Entry, error) bool) {
		data, err := os.ReadFile(path)
		if err != nil {
			yield(entities.Entry{}, fmt.Errorf("%w: %w", entities.ErrManifestUnreadable, err))
			return
		}

		var doc document
		if decodeErr := toml.Unmarshal(data, &doc); decodeErr != nil {
			yield(entities.Entry{}, fmt.Errorf("%w: %s: %w", entities.ErrManifestUnreadable, path, decodeErr))
			return
		}

		for i, dep := range doc.Project.Dependencies {
			if !yield(entities.ParseEntry(i+1, dep, commentMarker), nil) {
				return
			}
		}
	}
}
