package repositories

// ConsoleRepository is the user-facing display of the launcher.
type ConsoleRepository interface {
	Notice(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Clear wipes the display before the application takes over the terminal.
	Clear()

	// Pause shows prompt and waits for a keypress. It returns immediately when
	// there is no interactive terminal to read from.
	Pause(prompt string)
}
