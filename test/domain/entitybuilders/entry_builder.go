//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/bootstrap/internal/domain/entities"
)

// EntryBuilder helps create manifest entries with a fluent interface.
type EntryBuilder struct {
	*testkit.BaseBuilder
	line          int
	raw           string
	commentMarker string
}

// NewEntryBuilder creates a new entry builder with sensible defaults.
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		line:          1,
		raw:           "test-package==1.0.0",
		commentMarker: entities.DefaultCommentMarker,
	}
}

// WithLine sets the manifest line number.
func (b *EntryBuilder) WithLine(line int) *EntryBuilder {
	b.line = line
	return b
}

// WithRaw sets the raw manifest line.
func (b *EntryBuilder) WithRaw(raw string) *EntryBuilder {
	b.raw = raw
	return b
}

// WithCommentMarker sets the comment marker used while parsing.
func (b *EntryBuilder) WithCommentMarker(marker string) *EntryBuilder {
	b.commentMarker = marker
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *EntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *EntryBuilder) BuildEntry() entities.Entry {
	return entities.ParseEntry(b.line, b.raw, b.commentMarker)
}

// Reset clears the builder state, allowing it to be reused.
func (b *EntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.line = 1
	b.raw = "test-package==1.0.0"
	b.commentMarker = entities.DefaultCommentMarker
	return b
}

// Clone creates a deep copy of the EntryBuilder.
func (b *EntryBuilder) Clone() testkit.Builder {
	return &EntryBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		line:          b.line,
		raw:           b.raw,
		commentMarker: b.commentMarker,
	}
}
