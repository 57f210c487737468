package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/callshift/internal/ui/pretty"
	"github.com/yaklabco/callshift/pkg/runner"
)

func TestFormatRunSummary(t *testing.T) {
	s := pretty.NewStyles(false)

	t.Run("nothing to rewrite", func(t *testing.T) {
		out := s.FormatRunSummary(runner.Stats{FilesScanned: 5})

		assert.Contains(t, out, "No calls to rewrite")
		assert.Contains(t, out, "(5 files scanned)")
	})

	t.Run("rewrites with singular forms", func(t *testing.T) {
		out := s.FormatRunSummary(runner.Stats{
			FilesScanned:   1,
			FilesRewritten: 1,
			EditsApplied:   1,
		})

		assert.Contains(t, out, "rewrote 1 call in 1 file")
		assert.Contains(t, out, "(1 file scanned)")
	})

	t.Run("skips and errors appended", func(t *testing.T) {
		out := s.FormatRunSummary(runner.Stats{
			FilesScanned:   10,
			FilesRewritten: 2,
			FilesSkipped:   3,
			FilesErrored:   1,
			EditsApplied:   7,
		})

		assert.Contains(t, out, "rewrote 7 calls in 2 files")
		assert.Contains(t, out, "3 skipped")
		assert.Contains(t, out, "1 errored")
	})

	t.Run("ends with newline", func(t *testing.T) {
		out := s.FormatRunSummary(runner.Stats{})
		assert.True(t, strings.HasSuffix(out, "\n"))
	})
}

func TestFormatFileLine(t *testing.T) {
	s := pretty.NewStyles(false)

	t.Run("short path unmodified", func(t *testing.T) {
		out := s.FormatFileLine(&bytes.Buffer{}, "main.go", "rewrote 2 call(s)", false)

		assert.Equal(t, "main.go: rewrote 2 call(s)", out)
	})

	t.Run("long path truncated from the left", func(t *testing.T) {
		long := strings.Repeat("deeply/nested/", 10) + "main.go"
		out := s.FormatFileLine(&bytes.Buffer{}, long, "unchanged", false)

		assert.True(t, strings.HasPrefix(out, "..."))
		assert.Contains(t, out, "main.go: unchanged")
		assert.LessOrEqual(t, len(out), 80)
	})
}
