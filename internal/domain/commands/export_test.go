package commands

// CanonicalVersion exports canonicalVersion for testing.
var CanonicalVersion = canonicalVersion //nolint:gochecknoglobals // test export

// VersionMismatch exports versionMismatch for testing.
var VersionMismatch = versionMismatch //nolint:gochecknoglobals // test export
