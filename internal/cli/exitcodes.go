package cli

import "github.com/yaklabco/callshift/pkg/runner"

// Exit codes for callshift.
const (
	// ExitSuccess indicates successful execution with every match rewritten.
	ExitSuccess = 0

	// ExitSkippedFiles indicates the run completed but left files untouched
	// (ambiguous call sites or per-file errors).
	ExitSkippedFiles = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasSkips() || result.HasErrors() {
		return ExitSkippedFiles
	}
	return ExitSuccess
}
