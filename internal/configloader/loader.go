// Package configloader provides configuration discovery and loading.
// It searches upward from the working directory for a project config file,
// honors an explicit --config path, and applies environment overrides.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/callshift/pkg/config"
)

// configFileNames are the recognized project config file names, in order
// of preference.
var configFileNames = []string{".callshift.yaml", "callshift.yaml"}

// ErrNoConfig is returned when no configuration file can be found.
var ErrNoConfig = errors.New("no configuration file found")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, discovery is skipped and a missing file is an error.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the loaded, environment-adjusted configuration.
	Config *config.Config

	// LoadedFrom is the path the configuration was read from.
	LoadedFrom string
}

// Load resolves and loads the configuration.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	path := opts.ExplicitPath
	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path == "" {
		workDir := opts.WorkingDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
			workDir = wd
		}
		found, err := discover(workDir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &LoadResult{Config: cfg, LoadedFrom: path}, nil
}

// discover walks upward from dir looking for a recognized config file.
func discover(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(current, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNoConfig
		}
		current = parent
	}
}
