package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/callshift/pkg/patch"
)

// RenderDiff renders a unified diff with per-line styling.
func (s *Styles) RenderDiff(d *patch.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- a/%s", path)) + "\n")
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ b/%s", path)) + "\n")

	for _, h := range d.Hunks {
		b.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			h.OrigStart, h.OrigCount, h.NewStart, h.NewCount)) + "\n")
		for _, line := range h.Lines {
			switch line.Kind {
			case patch.LineAdd:
				b.WriteString(s.DiffAdd.Render("+"+line.Content) + "\n")
			case patch.LineRemove:
				b.WriteString(s.DiffRemove.Render("-"+line.Content) + "\n")
			default:
				b.WriteString(s.DiffContext.Render(" "+line.Content) + "\n")
			}
		}
	}
	return b.String()
}
