//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

// SettingsBuilder creates launcher settings suited to tests: no tools, no
// lock, no terminal interaction.
type SettingsBuilder struct {
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{settings: entities.Settings{
		Interpreter:   "python",
		Manifest:      "requirements.txt",
		CommentMarker: entities.DefaultCommentMarker,
		EntryPoint:    "main.py",
		EntryArgs:     []string{},
		Tools:         []string{},
		LockFile:      entities.LockDisabled,
		CheckVersions: true,
	}}
}

// WithInterpreter sets the interpreter name.
func (b *SettingsBuilder) WithInterpreter(interpreter string) *SettingsBuilder {
	b.settings.Interpreter = interpreter
	return b
}

// WithManifest sets the manifest path.
func (b *SettingsBuilder) WithManifest(path string) *SettingsBuilder {
	b.settings.Manifest = path
	return b
}

// WithTools sets the external tools to check.
func (b *SettingsBuilder) WithTools(tools ...string) *SettingsBuilder {
	b.settings.Tools = tools
	return b
}

// WithLockFile sets the lock path.
func (b *SettingsBuilder) WithLockFile(path string) *SettingsBuilder {
	b.settings.LockFile = path
	return b
}

// WithEntryArgs sets the arguments passed after the entry point.
func (b *SettingsBuilder) WithEntryArgs(args ...string) *SettingsBuilder {
	b.settings.EntryArgs = args
	return b
}

// WithCheckVersions toggles the pin comparison.
func (b *SettingsBuilder) WithCheckVersions(enabled bool) *SettingsBuilder {
	b.settings.CheckVersions = enabled
	return b
}

// WithTerminal toggles screen clearing and the exit prompt together.
func (b *SettingsBuilder) WithTerminal(enabled bool) *SettingsBuilder {
	b.settings.ClearScreen = enabled
	b.settings.Pause = enabled
	return b
}

// Build returns a copy of the configured settings.
func (b *SettingsBuilder) Build() *entities.Settings {
	settings := b.settings
	settings.EntryArgs = append([]string{}, b.settings.EntryArgs...)
	settings.Tools = append([]string{}, b.settings.Tools...)
	return &settings
}
