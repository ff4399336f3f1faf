package requirements

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

const manifestName = entities.ManifestFormatRequirements

// RequirementsManifestRepository reads pip requirements files, one
// requirement per line.
type RequirementsManifestRepository struct{}

// NewRequirementsManifestRepository creates a new requirements file reader.
func NewRequirementsManifestRepository() repositories.ManifestRepository {
	return &RequirementsManifestRepository{}
}

func (r *RequirementsManifestRepository) Name() string { return manifestName }

// Detect returns true for .txt and .in files (requirements.txt, requirements.in).
func (r *RequirementsManifestRepository) Detect(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".in"
}

// Entries opens the file lazily and yields one entry per line, including
// blank and comment lines so callers can see what was skipped.
func (r *RequirementsManifestRepository) Entries(path, commentMarker string) iter.Seq2[entities.Entry, error] {
	return func(yield func(entities.Entry, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield(entities.Entry{}, fmt.Errorf("%w: %w", entities.ErrManifestUnreadable, err))
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		line := 0
		for scanner.Scan() {
			line++
			raw := scanner.Text()
			if line == 1 {
				raw = strings.TrimPrefix(raw, "\uFEFF")
			}
			if !yield(entities.ParseEntry(line, raw, commentMarker), nil) {
				return
			}
		}

		if scanErr := scanner.Err(); scanErr != nil {
			yield(entities.Entry{}, fmt.Errorf(
				"%w: %s line %d: %w", entities.ErrManifestUnreadable, path, line+1, scanErr,
			))
		}
	}
}
