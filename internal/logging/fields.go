// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPatterns   = "patterns"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldRule     = "rule"
	FieldRules    = "rules"
	FieldMethod   = "method"
	FieldPackages = "packages"
	FieldDryRun   = "dry_run"
	FieldJobs     = "jobs"

	// Statistics fields.
	FieldFilesScanned   = "files_scanned"
	FieldFilesRewritten = "files_rewritten"
	FieldFilesSkipped   = "files_skipped"
	FieldEditsApplied   = "edits_applied"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
