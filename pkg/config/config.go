// Package config defines core configuration types for callshift.
// These are pure data structures; loading and discovery live in
// internal/configloader.
package config

// Rule describes one call pattern to migrate. Matching is never done on the
// method name alone: a call is rewritten only when its declaring symbol
// resolves into Packages, so same-named methods elsewhere are left alone.
type Rule struct {
	// Name identifies the rule in output and config.
	Name string `yaml:"name"`

	// Method is the invoked method or function name to match.
	Method string `yaml:"method"`

	// Packages is the allow-list of declaring package import paths.
	Packages []string `yaml:"packages"`

	// Outer is the outer replacement template, e.g. "verify.That".
	Outer string `yaml:"outer"`

	// Inner is the inner replacement template, e.g. "IsEqualTo".
	Inner string `yaml:"inner"`

	// OldImport is the import path to retire once its calls are gone.
	OldImport string `yaml:"old_import"`

	// NewImport is the import path the replacement form needs.
	NewImport string `yaml:"new_import"`

	// NewAlias optionally aliases the new import.
	NewAlias string `yaml:"new_alias"`
}

// AllowsPackage reports whether path is in the rule's namespace allow-list.
func (r Rule) AllowsPackage(path string) bool {
	for _, p := range r.Packages {
		if p == path {
			return true
		}
	}
	return false
}

// OutputFormat specifies how run results are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid reports whether the format is a known one.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for callshift.
type Config struct {
	// Rules holds the migration rules to apply.
	Rules []Rule `yaml:"rules"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// IncludeTests rewrites _test.go files as well.
	IncludeTests bool `yaml:"include_tests"`

	// Backups configures pre-rewrite backups.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options, never persisted to config files.

	// DryRun shows diffs without writing files.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation regardless of config.
	NoBackups bool `yaml:"-"`
}

// Default returns a Config with defaults applied.
func Default() *Config {
	return &Config{
		Format: FormatText,
	}
}
