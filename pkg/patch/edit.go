// Package patch provides text edit types, batch validation, and offset-exact
// application for source rewriting.
package patch

// TextEdit represents a single text replacement in a file.
// Offsets are always relative to the original, unmodified file content.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Len returns the number of original bytes covered by the edit.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// Overlaps reports whether two edits share any byte of the original content.
func (e TextEdit) Overlaps(other TextEdit) bool {
	return e.StartOffset < other.EndOffset && other.StartOffset < e.EndOffset
}
