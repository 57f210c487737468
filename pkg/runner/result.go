package runner

import "github.com/yaklabco/callshift/pkg/rewrite"

// FileOutcome wraps a pipeline result with the path it belongs to.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Result is the pipeline result; nil when processing errored.
	Result *rewrite.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesScanned is the number of files fed through the engine.
	FilesScanned int

	// FilesRewritten is the number of files written back to disk.
	FilesRewritten int

	// FilesSkipped is the number of files deliberately left untouched
	// (ambiguous call sites, concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that failed with an error.
	FilesErrored int

	// FilesWithMatches is the number of files with at least one candidate.
	FilesWithMatches int

	// EditsApplied is the total number of call sites rewritten.
	EditsApplied int
}

// Result is the overall runner result, ordered deterministically by path.
type Result struct {
	// Files contains the outcome for each processed file.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasSkips reports whether any file was left untouched on purpose.
func (r *Result) HasSkips() bool {
	return r != nil && r.Stats.FilesSkipped > 0
}

// HasErrors reports whether any file failed with an error.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the result with one file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesScanned++

	pr := outcome.Result
	if pr.Sites > 0 {
		r.Stats.FilesWithMatches++
	}
	if pr.Skipped {
		r.Stats.FilesSkipped++
	}
	if pr.Written {
		r.Stats.FilesRewritten++
	}
	if pr.Written || pr.Modified() {
		r.Stats.EditsApplied += pr.EditsApplied
	}
}
