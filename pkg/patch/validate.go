package patch

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an impossible range.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes two edits whose ranges overlap.
// Overlap is an invariant violation: one edit per call site can never
// produce it, so a conflict always aborts the batch.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// ValidateEdits checks that all edits have sane ranges for the given content length.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortDescending orders edits by descending start offset.
// This is the application order: each splice touches only bytes at or after
// its own start, so offsets of edits still pending are never shifted.
func SortDescending(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset > edits[j].StartOffset
		}
		return edits[i].EndOffset > edits[j].EndOffset
	})
}

// DetectConflicts checks a descending-sorted slice for overlapping ranges.
// Returns nil if no pair overlaps, or the first conflict found.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		// Descending order: curr lies at or left of prev.
		if curr.EndOffset > prev.StartOffset {
			return &ConflictError{Edit1: curr, Edit2: prev}
		}
	}
	return nil
}

// Prepare validates the batch against the content length, sorts its edits
// into application order, and checks for overlaps. It returns the edits
// ready for Apply, or an error that should abort the whole file.
func Prepare(b *Batch, contentLen int) ([]TextEdit, error) {
	if b.Aborted() {
		return nil, fmt.Errorf("batch aborted: %s", b.Reason())
	}
	edits := b.Edits()
	if len(edits) == 0 {
		return nil, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortDescending(sorted)

	if err := DetectConflicts(sorted); err != nil {
		return nil, err
	}

	return sorted, nil
}
