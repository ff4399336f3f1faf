package repositories

// ExecutableRepository resolves external programs on the search path.
type ExecutableRepository interface {
	// Locate returns the absolute path of the first candidate that resolves.
	// It returns an error when none of the candidates can be found.
	Locate(candidates ...string) (string, error)
}
