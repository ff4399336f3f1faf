package entities

// PackageStatus is the answer of a package manager presence query.
type PackageStatus struct {
	Installed bool
	Version   string // Installed version, empty when unknown or absent
}

// EntryStatus pairs a manifest entry with its installation state.
type EntryStatus struct {
	Entry         Entry
	Status        PackageStatus
	Mismatch      bool // Installed version differs from an exact pin
	NotApplicable bool // Environment marker excludes this platform
}

// BootstrapReport summarizes one check-and-install pass.
type BootstrapReport struct {
	Interpreter  string
	Checked      []Entry
	Missing      []Entry
	Installed    []Entry
	Unprocessed  []Entry // pip option lines (-r, -e, --index-url, ...) left to the user
	NotApplied   []Entry // requirements whose environment marker excludes this platform
	MissingTools []string
}

// AllInstalled reports whether the pass found nothing missing and nothing
// it could not verify.
func (r *BootstrapReport) AllInstalled() bool {
	return len(r.Missing) == 0 && len(r.Unprocessed) == 0
}
