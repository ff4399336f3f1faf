//go:build unit

package requirements_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
	"github.com/rios0rios0/bootstrap/internal/infrastructure/repositories/requirements"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRequirementsManifestRepository_Detect(t *testing.T) {
	t.Parallel()

	t.Run("should detect requirements files by extension", func(t *testing.T) {
		t.Parallel()

		// given
		repo := requirements.NewRequirementsManifestRepository()

		// when / then
		assert.True(t, repo.Detect("requirements.txt"))
		assert.True(t, repo.Detect("deps/requirements.in"))
		assert.True(t, repo.Detect("REQUIREMENTS.TXT"))
		assert.False(t, repo.Detect("pyproject.toml"))
		assert.Equal(t, entities.ManifestFormatRequirements, repo.Name())
	})
}

func TestRequirementsManifestRepository_Entries(t *testing.T) {
	t.Parallel()

	t.Run("should yield one entry per line in order", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeManifest(t, "# comment\n\npkgA\npkgB==2.0\n")
		repo := requirements.NewRequirementsManifestRepository()

		// when
		var got []entities.Entry
		for entry, err := range repo.Entries(path, "#") {
			require.NoError(t, err)
			got = append(got, entry)
		}

		// then
		require.Len(t, got, 4)
		assert.Equal(t, entities.EntryComment, got[0].Kind)
		assert.Equal(t, entities.EntryBlank, got[1].Kind)
		assert.Equal(t, "pkgA", got[2].Name)
		assert.Equal(t, 3, got[2].Line)
		assert.Equal(t, "pkgB", got[3].Name)
		assert.Equal(t, "==2.0", got[3].Constraint)
	})

	t.Run("should strip a byte order mark and CRLF endings", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeManifest(t, "\uFEFFnumpy\r\nscipy>=1.0\r\n")
		repo := requirements.NewRequirementsManifestRepository()

		// when
		var names []string
		for entry, err := range repo.Entries(path, "#") {
			require.NoError(t, err)
			names = append(names, entry.Name)
		}

		// then
		assert.Equal(t, []string{"numpy", "scipy"}, names)
	})

	t.Run("should stop reading when the consumer stops", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeManifest(t, "a\nb\nc\n")
		repo := requirements.NewRequirementsManifestRepository()

		// when
		var names []string
		for entry, err := range repo.Entries(path, "#") {
			require.NoError(t, err)
			names = append(names, entry.Name)
			break
		}

		// then
		assert.Equal(t, []string{"a"}, names)
	})

	t.Run("should yield an unreadable manifest error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.txt")
		repo := requirements.NewRequirementsManifestRepository()

		// when
		var errs []error
		for _, err := range repo.Entries(path, "#") {
			errs = append(errs, err)
		}

		// then
		require.Len(t, errs, 1)
		require.ErrorIs(t, errs[0], entities.ErrManifestUnreadable)
	})

	t.Run("should honor a custom comment marker", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeManifest(t, ";skipped\nrequests\n")
		repo := requirements.NewRequirementsManifestRepository()

		// when
		var kinds []entities.EntryKind
		for entry, err := range repo.Entries(path, ";") {
			require.NoError(t, err)
			kinds = append(kinds, entry.Kind)
		}

		// then
		assert.Equal(t, []entities.EntryKind{entities.EntryComment, entities.EntryRequirement}, kinds)
	})
}
