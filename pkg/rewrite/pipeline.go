package rewrite

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/fsutil"
	"github.com/yaklabco/callshift/pkg/patch"
	"github.com/yaklabco/callshift/pkg/source"
)

// ErrWriteFailure indicates the rewritten content could not be written.
var ErrWriteFailure = errors.New("write failure")

// Options controls the per-file safety pipeline.
type Options struct {
	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures pre-rewrite backups.
	Backup fsutil.BackupConfig
}

// OptionsFromConfig derives pipeline options from the resolved config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		DryRun: cfg.DryRun,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		},
	}
}

// Result is the outcome of processing a single file.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Sites is the number of candidate call sites found.
	Sites int

	// EditsApplied is the number of edits spliced into the content.
	EditsApplied int

	// ModifiedContent is the rewritten content, nil when unchanged.
	ModifiedContent []byte

	// Diff is the unified diff in dry-run mode.
	Diff *patch.Diff

	// Skipped is true when the file was left untouched on purpose.
	Skipped bool

	// SkipReason explains a skip.
	SkipReason string

	// BackupCreated is true when a sidecar backup was written.
	BackupCreated bool

	// Written is true when the file was rewritten on disk.
	Written bool
}

// Modified reports whether the pipeline produced new content.
func (r *Result) Modified() bool {
	return r.ModifiedContent != nil
}

// Summary returns the one-line, per-file outcome for reporting.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written:
		return fmt.Sprintf("rewrote %d call(s)", r.EditsApplied)
	case r.Modified():
		return fmt.Sprintf("%d call(s) to rewrite", r.EditsApplied)
	default:
		return "unchanged"
	}
}

// Pipeline runs the full scan-patch-write sequence for single files.
// Each invocation owns its snapshot and output buffer exclusively, so
// distinct files may be processed concurrently without locking.
type Pipeline struct {
	// Engine scans files and accumulates edit batches.
	Engine *Engine
}

// NewPipeline creates a Pipeline around the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessSnapshot runs one file through scan, batch validation, patch,
// import rewrite, and atomic write. The write step is only reached after
// the batch validated in full, so no partially rewritten file is ever
// observable; an aborted batch reports the file as skipped with its reason.
func (p *Pipeline) ProcessSnapshot(ctx context.Context, snap *source.Snapshot, opts Options) (*Result, error) {
	result := &Result{Path: snap.Path}

	fr, err := p.Engine.ScanFile(ctx, snap)
	if err != nil {
		return nil, err
	}
	result.Sites = fr.Sites

	if fr.Batch.Aborted() {
		result.Skipped = true
		result.SkipReason = fr.Batch.Reason()
		return result, nil
	}

	edits, err := patch.Prepare(fr.Batch, len(snap.Content))
	if err != nil {
		result.Skipped = true
		result.SkipReason = err.Error()
		return result, nil
	}
	if len(edits) == 0 {
		return result, nil
	}

	content := patch.Apply(snap.Content, edits)
	for _, rule := range p.Engine.Rules {
		if fr.RuleHits[rule.Name] > 0 {
			content = RewriteImports(content, rule)
		}
	}

	result.EditsApplied = len(edits)
	result.ModifiedContent = content

	if opts.DryRun {
		result.Diff = patch.GenerateDiff(snap.Path, snap.Content, content)
		return result, nil
	}

	// Refuse to clobber a file that changed underneath us since load.
	if snap.FileInfo != nil {
		modified, err := fsutil.CheckModified(ctx, snap.FileInfo)
		if err != nil {
			return nil, fmt.Errorf("check modified: %w", err)
		}
		if modified {
			result.Skipped = true
			result.SkipReason = "file modified during processing"
			result.ModifiedContent = nil
			return result, nil
		}
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, snap.Path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	var mode = fsutil.DefaultFileMode
	if snap.FileInfo != nil {
		mode = snap.FileInfo.Mode
	}
	if err := fsutil.WriteAtomic(ctx, snap.Path, content, mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}
