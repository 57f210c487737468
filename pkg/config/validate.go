package config

import (
	"errors"
	"fmt"

	"golang.org/x/mod/module"
)

// ErrNoRules is returned when a configuration defines no migration rules.
var ErrNoRules = errors.New("no rules configured")

// Validate checks that the configuration is complete enough to run.
func (c *Config) Validate() error {
	if c == nil || len(c.Rules) == 0 {
		return ErrNoRules
	}

	for i, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			name := rule.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("rule %s: %w", name, err)
		}
	}

	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}

	return nil
}

// Validate checks a single rule for completeness and well-formed import paths.
func (r Rule) Validate() error {
	if r.Method == "" {
		return errors.New("method is required")
	}
	if len(r.Packages) == 0 {
		return errors.New("packages allow-list is required")
	}
	if r.Outer == "" || r.Inner == "" {
		return errors.New("outer and inner templates are required")
	}

	for _, p := range r.Packages {
		if err := module.CheckImportPath(p); err != nil {
			return fmt.Errorf("packages entry %q: %w", p, err)
		}
	}
	if r.OldImport != "" {
		if err := module.CheckImportPath(r.OldImport); err != nil {
			return fmt.Errorf("old_import %q: %w", r.OldImport, err)
		}
	}
	if r.NewImport != "" {
		if err := module.CheckImportPath(r.NewImport); err != nil {
			return fmt.Errorf("new_import %q: %w", r.NewImport, err)
		}
	}

	return nil
}
