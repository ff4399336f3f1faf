package controllers

// RenderStatusTable exports renderStatusTable for testing.
var RenderStatusTable = renderStatusTable //nolint:gochecknoglobals // test export
