package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/callshift/internal/ui/pretty"
	"github.com/yaklabco/callshift/pkg/runner"
)

// TextReporter writes one styled summary line per processed file, followed
// by a one-line run summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to process."))
		return nil
	}

	for _, file := range result.Files {
		path := r.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}
		if file.Result == nil {
			continue
		}

		pr := file.Result
		if pr.Sites == 0 && !pr.Skipped {
			// Nothing matched; stay quiet about the file.
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileLine(r.opts.Writer, path, pr.Summary(), pr.Skipped))

		if r.opts.ShowDiffs && pr.Diff.HasChanges() {
			fmt.Fprint(r.bw, r.styles.RenderDiff(pr.Diff))
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatRunSummary(result.Stats))
	return nil
}

func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
