// Package reporter formats and writes rewrite run results.
package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/callshift/pkg/config"
)

// bufWriterSize is the buffer size for output writers.
const bufWriterSize = 32 * 1024

// Options controls reporter behavior.
type Options struct {
	// Writer is the output destination. Defaults to stdout.
	Writer io.Writer

	// Format selects the output format.
	Format config.OutputFormat

	// Color is the color mode: "auto", "always", or "never".
	Color string

	// WorkingDir shortens reported file paths when set.
	WorkingDir string

	// ShowDiffs renders unified diffs for files with pending changes
	// (dry-run mode).
	ShowDiffs bool
}

// DefaultOptions returns reporter defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: config.FormatText,
		Color:  "auto",
	}
}
