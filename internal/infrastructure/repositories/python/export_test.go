package python

// ParseShowVersion exports parseShowVersion for testing.
var ParseShowVersion = parseShowVersion //nolint:gochecknoglobals // test export
