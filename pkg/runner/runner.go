package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/callshift/pkg/rewrite"
	"github.com/yaklabco/callshift/pkg/source"
)

// Runner orchestrates multi-file rewriting using a rewrite.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *rewrite.Pipeline
}

// New creates a Runner with the given pipeline.
func New(pipeline *rewrite.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run loads the packages matching opts.Patterns, filters the resulting file
// snapshots, and processes them concurrently. Each worker owns its snapshot
// and output buffer exclusively, so files are independent units of work.
// Outcomes are collected into a deterministic, path-ordered Result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	includeTests := opts.Config != nil && opts.Config.IncludeTests
	snaps, err := source.Load(ctx, source.LoadOptions{
		Dir:          opts.WorkingDir,
		Patterns:     opts.effectivePatterns(),
		IncludeTests: includeTests,
	})
	if err != nil {
		return nil, err
	}
	snaps = FilterSnapshots(snaps, opts)

	return r.RunSnapshots(ctx, snaps, opts)
}

// RunSnapshots processes already-loaded snapshots through the worker pool.
func (r *Runner) RunSnapshots(ctx context.Context, snaps []*source.Snapshot, opts Options) (*Result, error) {
	result := &Result{Files: make([]FileOutcome, 0, len(snaps))}
	if len(snaps) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(snaps) {
		jobs = len(snaps)
	}

	pipelineOpts := rewrite.OptionsFromConfig(opts.Config)

	workCh := make(chan *source.Snapshot)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, pipelineOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, snap := range snaps {
			select {
			case <-ctx.Done():
				return
			case workCh <- snap:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index by path, then rebuild in the
	// deterministic snapshot order.
	outcomes := make(map[string]FileOutcome, len(snaps))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, snap := range snaps {
		if outcome, ok := outcomes[snap.Path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker processes snapshots from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan *source.Snapshot,
	outCh chan<- FileOutcome,
	opts rewrite.Options,
) {
	for snap := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: snap.Path}
		pr, err := r.Pipeline.ProcessSnapshot(ctx, snap, opts)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = pr
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
