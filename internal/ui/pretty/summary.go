package pretty

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/callshift/pkg/runner"
)

const defaultTermWidth = 80

// FormatRunSummary formats run statistics as a single line.
// Example: "rewrote 6 calls in 2 files (14 files scanned), 1 skipped".
func (s *Styles) FormatRunSummary(stats runner.Stats) string {
	scanned := s.Dim.Render(fmt.Sprintf(" (%d %s scanned)", stats.FilesScanned, plural(stats.FilesScanned, "file")))

	var msg string
	if stats.EditsApplied == 0 {
		msg = s.Success.Render("No calls to rewrite") + scanned
	} else {
		msg = s.Success.Render(fmt.Sprintf("rewrote %d %s in %d %s",
			stats.EditsApplied, plural(stats.EditsApplied, "call"),
			stats.FilesRewritten, plural(stats.FilesRewritten, "file"))) + scanned
	}

	var tail []string
	if stats.FilesSkipped > 0 {
		tail = append(tail, s.Skip.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		tail = append(tail, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}
	if len(tail) > 0 {
		msg += ", " + strings.Join(tail, ", ")
	}
	return msg + "\n"
}

// FormatFileLine formats the one summary line for a processed file,
// truncating long paths to the terminal width.
func (s *Styles) FormatFileLine(writer io.Writer, path, outcome string, skipped bool) string {
	style := s.Outcome
	if skipped {
		style = s.Skip
	}

	width := terminalWidth(writer)
	// Reserve room for ": " plus the outcome text.
	if maxPath := width - len(outcome) - 2; len(path) > maxPath && maxPath > 4 {
		path = "..." + path[len(path)-maxPath+3:]
	}
	return s.FilePath.Render(path) + ": " + style.Render(outcome)
}

// terminalWidth attempts to get the terminal width from the writer.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
