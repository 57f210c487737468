package patch_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/callshift/pkg/patch"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("identical content returns nil", func(t *testing.T) {
		t.Parallel()

		content := []byte("line1\nline2\n")
		if d := patch.GenerateDiff("a.go", content, content); d != nil {
			t.Errorf("GenerateDiff() = %v, want nil", d)
		}
	})

	t.Run("single changed line", func(t *testing.T) {
		t.Parallel()

		orig := []byte("a\nb\nc\n")
		next := []byte("a\nx\nc\n")

		d := patch.GenerateDiff("a.go", orig, next)
		if d == nil {
			t.Fatal("GenerateDiff() = nil, want diff")
		}
		if !d.HasChanges() {
			t.Error("HasChanges() = false, want true")
		}
		if d.Additions != 1 || d.Deletions != 1 {
			t.Errorf("Additions = %d, Deletions = %d, want 1 and 1", d.Additions, d.Deletions)
		}
		if len(d.Hunks) != 1 {
			t.Fatalf("len(Hunks) = %d, want 1", len(d.Hunks))
		}
	})

	t.Run("added line", func(t *testing.T) {
		t.Parallel()

		orig := []byte("a\nb\n")
		next := []byte("a\nb\nc\n")

		d := patch.GenerateDiff("a.go", orig, next)
		if d == nil {
			t.Fatal("GenerateDiff() = nil, want diff")
		}
		if d.Additions != 1 || d.Deletions != 0 {
			t.Errorf("Additions = %d, Deletions = %d, want 1 and 0", d.Additions, d.Deletions)
		}
	})

	t.Run("distant changes get separate hunks", func(t *testing.T) {
		t.Parallel()

		var origLines, nextLines []string
		for i := range 30 {
			line := strings.Repeat("x", i+1)
			origLines = append(origLines, line)
			nextLines = append(nextLines, line)
		}
		nextLines[2] = "changed-early"
		nextLines[27] = "changed-late"

		orig := []byte(strings.Join(origLines, "\n") + "\n")
		next := []byte(strings.Join(nextLines, "\n") + "\n")

		d := patch.GenerateDiff("a.go", orig, next)
		if d == nil {
			t.Fatal("GenerateDiff() = nil, want diff")
		}
		if len(d.Hunks) != 2 {
			t.Errorf("len(Hunks) = %d, want 2", len(d.Hunks))
		}
	})

	t.Run("string renders unified format", func(t *testing.T) {
		t.Parallel()

		orig := []byte("a\nb\nc\n")
		next := []byte("a\nx\nc\n")

		d := patch.GenerateDiff("pkg/a.go", orig, next)
		out := d.String()

		if !strings.Contains(out, "--- a/pkg/a.go") {
			t.Errorf("missing original header in:\n%s", out)
		}
		if !strings.Contains(out, "+++ b/pkg/a.go") {
			t.Errorf("missing modified header in:\n%s", out)
		}
		if !strings.Contains(out, "-b\n") {
			t.Errorf("missing removed line in:\n%s", out)
		}
		if !strings.Contains(out, "+x\n") {
			t.Errorf("missing added line in:\n%s", out)
		}
		if !strings.Contains(out, "@@ -1,3 +1,3 @@") {
			t.Errorf("missing hunk header in:\n%s", out)
		}
	})

	t.Run("nil diff has no changes", func(t *testing.T) {
		t.Parallel()

		var d *patch.Diff
		if d.HasChanges() {
			t.Error("nil diff should report no changes")
		}
		if d.String() != "" {
			t.Error("nil diff should render empty")
		}
	})
}

func FuzzGenerateDiff(f *testing.F) {
	// Add seed corpus.
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("hello"), []byte("hello"))
	f.Add([]byte("hello"), []byte("world"))
	f.Add([]byte("a\nb\nc\n"), []byte("a\nx\nc\n"))
	f.Add([]byte("line1\nline2\n"), []byte("line1\nline2\nline3\n"))
	f.Add([]byte("line1\nline2\nline3\n"), []byte("line1\nline3\n"))

	f.Fuzz(func(t *testing.T, original, modified []byte) {
		// GenerateDiff should not panic.
		d := patch.GenerateDiff("test.go", original, modified)

		if d == nil {
			return
		}

		if d.Path != "test.go" {
			t.Errorf("Path = %q, want test.go", d.Path)
		}

		// String() should not panic.
		_ = d.String()

		if !d.HasChanges() && len(d.Hunks) > 0 {
			t.Error("HasChanges() inconsistent with Hunks")
		}

		// Verify hunk structure.
		for hunkIdx, hunk := range d.Hunks {
			if hunk.OrigStart < 1 {
				t.Errorf("hunk %d: OrigStart = %d, want >= 1", hunkIdx, hunk.OrigStart)
			}
			if hunk.NewStart < 1 {
				t.Errorf("hunk %d: NewStart = %d, want >= 1", hunkIdx, hunk.NewStart)
			}

			var ctxCount, addCount, remCount int
			for _, line := range hunk.Lines {
				switch line.Kind {
				case patch.LineContext:
					ctxCount++
				case patch.LineAdd:
					addCount++
				case patch.LineRemove:
					remCount++
				}
			}

			if ctxCount+remCount != hunk.OrigCount {
				t.Errorf("hunk %d: context(%d) + remove(%d) != OrigCount(%d)",
					hunkIdx, ctxCount, remCount, hunk.OrigCount)
			}
			if ctxCount+addCount != hunk.NewCount {
				t.Errorf("hunk %d: context(%d) + add(%d) != NewCount(%d)",
					hunkIdx, ctxCount, addCount, hunk.NewCount)
			}
		}
	})
}
