package patch

// Batch accumulates the proposed edits for one file.
//
// A batch is either valid or aborted; there is no partial state. Once aborted
// it stays aborted, further Add calls are ignored, and its edits are never
// applied. This makes the all-or-nothing contract explicit rather than a
// convention callers have to remember.
type Batch struct {
	edits   []TextEdit
	aborted bool
	reason  string
}

// NewBatch creates an empty, valid batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Add appends an edit replacing bytes [start, end) with newText.
// Adds to an aborted batch are discarded.
func (b *Batch) Add(start, end int, newText string) {
	if b.aborted {
		return
	}
	b.edits = append(b.edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Abort marks the batch invalid with the given reason.
// The first reason wins; later aborts do not overwrite it.
func (b *Batch) Abort(reason string) {
	if b.aborted {
		return
	}
	b.aborted = true
	b.reason = reason
	b.edits = nil
}

// Aborted reports whether the batch has been invalidated.
func (b *Batch) Aborted() bool {
	return b.aborted
}

// Reason returns the abort reason, or "" for a valid batch.
func (b *Batch) Reason() string {
	return b.reason
}

// Edits returns the accumulated edits. Nil for an aborted batch.
func (b *Batch) Edits() []TextEdit {
	if b.aborted {
		return nil
	}
	return b.edits
}

// Len returns the number of accumulated edits (0 when aborted).
func (b *Batch) Len() int {
	if b.aborted {
		return 0
	}
	return len(b.edits)
}

// Empty reports whether the batch holds no edits.
func (b *Batch) Empty() bool {
	return b.Len() == 0
}
