package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/callshift/pkg/config"
)

// Environment variable names recognized by callshift.
const (
	envConfigPath = "CALLSHIFT_CONFIG"
	envDryRun     = "CALLSHIFT_DRY_RUN"
	envJobs       = "CALLSHIFT_JOBS"
	envFormat     = "CALLSHIFT_FORMAT"
	envNoBackups  = "CALLSHIFT_NO_BACKUPS"
)

// applyEnv applies environment variable overrides to the configuration.
func applyEnv(cfg *config.Config) error {
	if v := os.Getenv(envDryRun); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envDryRun, err)
		}
		cfg.DryRun = b
	}
	if v := os.Getenv(envJobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envJobs, err)
		}
		cfg.Jobs = n
	}
	if v := os.Getenv(envFormat); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envNoBackups); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envNoBackups, err)
		}
		cfg.NoBackups = b
	}
	return nil
}
