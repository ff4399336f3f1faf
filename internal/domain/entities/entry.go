package entities

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultCommentMarker is the character that starts a comment line in a manifest.
const DefaultCommentMarker = "#"

// EntryKind classifies a manifest line.
type EntryKind string

const (
	EntryBlank       EntryKind = "blank"
	EntryComment     EntryKind = "comment"
	EntryOption      EntryKind = "option" // pip options such as "-r other.txt"
	EntryRequirement EntryKind = "requirement"
)

// nameDelimiters end the package name token of a requirement line.
const nameDelimiters = "=<>!~;[@, \t"

// Entry is one parsed line of a dependency manifest.
type Entry struct {
	Line       int       // 1-based position in the manifest
	Raw        string    // Line exactly as read
	Text       string    // Trimmed line without inline comment
	Name       string    // Package name before the version constraint
	Constraint string    // Everything after the name (e.g. "==1.2.3")
	Kind       EntryKind // Blank, comment, option or requirement
}

// ParseEntry classifies a raw manifest line. An empty marker falls back to
// DefaultCommentMarker.
func ParseEntry(line int, raw, marker string) Entry {
	if marker == "" {
		marker = DefaultCommentMarker
	}

	entry := Entry{Line: line, Raw: raw}
	text := strings.TrimSpace(raw)

	switch {
	case text == "":
		entry.Kind = EntryBlank
		return entry
	case strings.HasPrefix(text, marker):
		entry.Text = text
		entry.Kind = EntryComment
		return entry
	case strings.HasPrefix(text, "-"):
		entry.Text = stripInlineComment(text, marker)
		entry.Kind = EntryOption
		return entry
	}

	text = stripInlineComment(text, marker)

	entry.Text = text
	entry.Kind = EntryRequirement
	entry.Name, entry.Constraint = splitRequirement(text)
	return entry
}

// stripInlineComment drops everything from the first marker preceded by
// whitespace, matching pip's "(^|\s+)#" comment rule.
func stripInlineComment(text, marker string) string {
	offset := 0
	for {
		idx := strings.Index(text[offset:], marker)
		if idx == -1 {
			return text
		}
		idx += offset
		if before, _ := utf8.DecodeLastRuneInString(text[:idx]); unicode.IsSpace(before) {
			return strings.TrimSpace(text[:idx])
		}
		offset = idx + len(marker)
	}
}

// splitRequirement cuts a requirement at the first version-constraint delimiter.
func splitRequirement(text string) (string, string) {
	idx := strings.IndexAny(text, nameDelimiters)
	if idx == -1 {
		return text, ""
	}
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx:])
}

// Skipped reports whether the entry carries no dependency to check.
func (e Entry) Skipped() bool {
	return e.Kind != EntryRequirement || e.Name == ""
}

// Requirement returns the text handed to the package installer.
func (e Entry) Requirement() string {
	return e.Text
}

// EnvironmentMarker returns the PEP 508 marker after ";" (e.g.
// `sys_platform == "win32"`), or an empty string.
func (e Entry) EnvironmentMarker() string {
	if e.Kind != EntryRequirement {
		return ""
	}
	_, marker, found := strings.Cut(e.Text, ";")
	if !found {
		return ""
	}
	return strings.TrimSpace(marker)
}

// PinnedVersion returns the version of an exact "==" pin, or an empty string.
func (e Entry) PinnedVersion() string {
	if !strings.HasPrefix(e.Constraint, "==") || strings.HasPrefix(e.Constraint, "===") {
		return ""
	}

	version := strings.TrimSpace(strings.TrimPrefix(e.Constraint, "=="))
	if idx := strings.IndexAny(version, ",; "); idx != -1 {
		version = version[:idx]
	}
	if strings.Contains(version, "*") {
		return ""
	}
	return version
}
