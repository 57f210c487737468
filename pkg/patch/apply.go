package patch

import "bytes"

// Apply splices a prepared slice of edits into content and returns the result.
// Edits must come from Prepare: sorted by descending start offset with no
// overlaps. Every offset is taken against the original content, so iterating
// the descending slice back to front walks the file left to right and no
// offset recomputation is ever needed.
func Apply(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	// Estimate result size.
	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - e.Len()
	}

	var out bytes.Buffer
	out.Grow(max(len(content)+delta, 0))

	cursor := 0
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
