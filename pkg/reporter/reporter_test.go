package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/reporter"
	"github.com/yaklabco/callshift/pkg/rewrite"
	"github.com/yaklabco/callshift/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/app/main.go",
				Result: &rewrite.Result{
					Path:         "/work/app/main.go",
					Sites:        2,
					EditsApplied: 2,
					Written:      true,
				},
			},
			{
				Path: "/work/app/legacy.go",
				Result: &rewrite.Result{
					Path:       "/work/app/legacy.go",
					Sites:      1,
					Skipped:    true,
					SkipReason: "cannot classify call to AssertEqual at legacy.go:10:2",
				},
			},
			{
				Path:   "/work/app/quiet.go",
				Result: &rewrite.Result{Path: "/work/app/quiet.go"},
			},
			{
				Path:  "/work/app/broken.go",
				Error: errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesScanned:     3,
			FilesRewritten:   1,
			FilesSkipped:     1,
			FilesErrored:     1,
			FilesWithMatches: 2,
			EditsApplied:     2,
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("text by default", func(t *testing.T) {
		r, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}})
		require.NoError(t, err)
		assert.IsType(t, &reporter.TextReporter{}, r)
	})

	t.Run("json", func(t *testing.T) {
		r, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: config.FormatJSON})
		require.NoError(t, err)
		assert.IsType(t, &reporter.JSONReporter{}, r)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
		require.Error(t, err)
	})
}

func TestTextReporter(t *testing.T) {
	t.Run("reports outcomes and summary", func(t *testing.T) {
		var buf bytes.Buffer
		r := reporter.NewTextReporter(reporter.Options{
			Writer:     &buf,
			Color:      "never",
			WorkingDir: "/work/app",
		})

		require.NoError(t, r.Report(context.Background(), sampleResult()))
		out := buf.String()

		assert.Contains(t, out, "main.go: rewrote 2 call(s)")
		assert.Contains(t, out, "legacy.go: skipped: cannot classify call to AssertEqual")
		assert.Contains(t, out, "broken.go: error: permission denied")
		assert.Contains(t, out, "rewrote 2 calls in 1 file (3 files scanned), 1 skipped, 1 errored")
	})

	t.Run("stays quiet about files without matches", func(t *testing.T) {
		var buf bytes.Buffer
		r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

		require.NoError(t, r.Report(context.Background(), sampleResult()))

		assert.NotContains(t, buf.String(), "quiet.go")
	})

	t.Run("empty result", func(t *testing.T) {
		var buf bytes.Buffer
		r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

		require.NoError(t, r.Report(context.Background(), &runner.Result{}))

		assert.Contains(t, buf.String(), "No files to process.")
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

		require.NoError(t, r.Report(context.Background(), nil))

		assert.Contains(t, buf.String(), "No files to process.")
	})
}

func TestJSONReporter(t *testing.T) {
	t.Run("emits a complete document", func(t *testing.T) {
		var buf bytes.Buffer
		r := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

		require.NoError(t, r.Report(context.Background(), sampleResult()))

		var doc struct {
			Files []struct {
				Path         string `json:"path"`
				Sites        int    `json:"sites"`
				EditsApplied int    `json:"edits_applied"`
				Written      bool   `json:"written"`
				Skipped      bool   `json:"skipped"`
				SkipReason   string `json:"skip_reason"`
				Error        string `json:"error"`
			} `json:"files"`
			Stats runner.Stats `json:"stats"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

		require.Len(t, doc.Files, 4)
		assert.Equal(t, "/work/app/main.go", doc.Files[0].Path)
		assert.Equal(t, 2, doc.Files[0].EditsApplied)
		assert.True(t, doc.Files[0].Written)

		assert.True(t, doc.Files[1].Skipped)
		assert.NotEmpty(t, doc.Files[1].SkipReason)

		assert.Equal(t, "permission denied", doc.Files[3].Error)

		assert.Equal(t, 2, doc.Stats.EditsApplied)
		assert.Equal(t, 1, doc.Stats.FilesSkipped)
	})

	t.Run("nil result yields empty files array", func(t *testing.T) {
		var buf bytes.Buffer
		r := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

		require.NoError(t, r.Report(context.Background(), nil))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, []any{}, doc["files"])
	})
}
