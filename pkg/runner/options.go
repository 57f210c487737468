// Package runner provides multi-file rewrite orchestration: package loading,
// snapshot filtering, and a per-file worker pool.
package runner

import "github.com/yaklabco/callshift/pkg/config"

// Options controls a rewrite run.
type Options struct {
	// Patterns are the user-specified package patterns or paths to process.
	// If empty, defaults to "./...".
	Patterns []string

	// WorkingDir is the base directory load queries resolve against.
	// If empty, the current process working directory is used.
	WorkingDir string

	// ExcludeGlobs are glob patterns used to skip files, relative to
	// WorkingDir. These merge ignore rules from config and CLI.
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectivePatterns returns the load patterns, defaulting to "./...".
func (o Options) effectivePatterns() []string {
	if len(o.Patterns) == 0 {
		return []string{"./..."}
	}
	return o.Patterns
}
