package entities

// BootstrapOptions holds runtime options passed to the bootstrap commands.
type BootstrapOptions struct {
	DryRun  bool
	Verbose bool
}
