//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should describe the captioning application launch", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, "requirements.txt", settings.Manifest)
		assert.Equal(t, "main.py", settings.EntryPoint)
		assert.Equal(t, "#", settings.CommentMarker)
		assert.Equal(t, []string{"ffmpeg", "ffprobe"}, settings.Tools)
		assert.Equal(t, []string{"python3", "python"}, settings.InterpreterCandidates())
		assert.True(t, settings.LockingEnabled())
		assert.True(t, settings.Pause)
		assert.True(t, settings.ClearScreen)
	})
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should overlay YAML values on the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.yaml", `
interpreter: python3.12
manifest: deps/requirements.txt
entry_args: ["--model", "small"]
tools: []
pause: false
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"python3.12"}, settings.InterpreterCandidates())
		assert.Equal(t, "deps/requirements.txt", settings.Manifest)
		assert.Equal(t, []string{"--model", "small"}, settings.EntryArgs)
		assert.Empty(t, settings.Tools)
		assert.False(t, settings.Pause)
		assert.True(t, settings.ClearScreen)
		assert.Equal(t, "main.py", settings.EntryPoint)
	})

	t.Run("should read HCL configuration files", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.hcl", `
manifest        = "pyproject.toml"
manifest_format = "pyproject"
entry_point     = "app.py"
tools           = ["ffmpeg"]
lock_file       = "-"
check_versions  = false
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "pyproject.toml", settings.Manifest)
		assert.Equal(t, entities.ManifestFormatPyproject, settings.ManifestFormat)
		assert.Equal(t, "app.py", settings.EntryPoint)
		assert.Equal(t, []string{"ffmpeg"}, settings.Tools)
		assert.False(t, settings.LockingEnabled())
		assert.False(t, settings.CheckVersions)
	})

	t.Run("should reject unknown HCL attributes", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.hcl", `unknown_key = "x"`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), `unknown setting "unknown_key"`)
	})

	t.Run("should reject HCL attributes of the wrong type", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.hcl", `pause = "yes"`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pause must be a bool")
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.yaml", "tools: [unclosed")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should reject a multi-character comment marker", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.yaml", `comment_marker: "//"`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "comment_marker must be a single character")
	})

	t.Run("should reject an unknown manifest format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.yaml", "manifest_format: pipfile")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest_format")
	})

	t.Run("should reject an empty entry point", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "bootstrap.yaml", `entry_point: ""`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry_point is required")
	})
}

func TestNewSettingsEnvironmentExpansion(t *testing.T) {
	t.Run("should expand environment variable references", func(t *testing.T) {
		// given
		t.Setenv("BOOTSTRAP_TEST_PYTHON", "/opt/python/bin/python3")
		t.Setenv("BOOTSTRAP_TEST_MODEL", "medium")
		path := writeConfig(t, "bootstrap.yaml", `
interpreter: ${BOOTSTRAP_TEST_PYTHON}
entry_args: ["--model", "${BOOTSTRAP_TEST_MODEL}"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/opt/python/bin/python3", settings.Interpreter)
		assert.Equal(t, []string{"--model", "medium"}, settings.EntryArgs)
	})

	t.Run("should expand unset variables to empty strings", func(t *testing.T) {
		// given
		path := writeConfig(t, "bootstrap.yaml", `interpreter: ${BOOTSTRAP_TEST_UNSET_VARIABLE}`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Empty(t, settings.Interpreter)
	})
}
