package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/callshift/internal/configloader"
	"github.com/yaklabco/callshift/internal/logging"
	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/reporter"
	"github.com/yaklabco/callshift/pkg/rewrite"
	"github.com/yaklabco/callshift/pkg/runner"
)

// ErrSkippedFiles is returned when files were left untouched on purpose.
var ErrSkippedFiles = errors.New("files skipped")

type rewriteFlags struct {
	dryRun    bool
	format    string
	ignore    []string
	jobs      int
	backup    bool
	noBackups bool
	tests     bool
}

func newRewriteCommand() *cobra.Command {
	flags := &rewriteFlags{}

	cmd := &cobra.Command{
		Use:   "rewrite [patterns...]",
		Short: "Rewrite matching call sites in Go packages",
		Long:  rewriteLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show diffs without writing files")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "write sidecar backups before rewriting")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backups regardless of config")
	cmd.Flags().BoolVar(&flags.tests, "tests", false, "rewrite _test.go files as well")

	return cmd
}

const rewriteLongDescription = `Rewrite matching call sites in Go packages.

By default, processes all packages under the current directory ("./...").
Specify package patterns to narrow the scope.

Examples:
  callshift rewrite                      # Rewrite ./...
  callshift rewrite ./internal/...       # Rewrite one subtree
  callshift rewrite --dry-run            # Show diffs without writing
  callshift rewrite --format json        # Output as JSON for CI
  callshift rewrite -j 8                 # Use 8 workers`

func runRewrite(cmd *cobra.Command, args []string, flags *rewriteFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	applyRewriteFlags(cmd, cfg, flags)

	logger.Debug("configuration loaded",
		logging.FieldPath, loadResult.LoadedFrom,
		logging.FieldRules, len(cfg.Rules),
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	engine := rewrite.NewEngine(cfg.Rules)
	pipeline := rewrite.NewPipeline(engine)
	rewriteRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Patterns:     args,
		WorkingDir:   workDir,
		ExcludeGlobs: append(cfg.Ignore, flags.ignore...),
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting rewrite run",
		logging.FieldPatterns, runOpts.Patterns,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := rewriteRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("rewrite run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     os.Stdout,
		Format:     cfg.Format,
		Color:      colorMode,
		WorkingDir: workDir,
		ShowDiffs:  cfg.DryRun,
	})
	if err != nil {
		return err
	}
	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	// Determine exit code based on result.
	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrSkippedFiles
	}

	return nil
}

// applyRewriteFlags maps CLI flags onto the loaded config. Only flags the
// user explicitly set override file values.
func applyRewriteFlags(cmd *cobra.Command, cfg *config.Config, flags *rewriteFlags) {
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backups.Enabled = flags.backup
	}
	if cmd.Flags().Changed("no-backups") {
		cfg.NoBackups = flags.noBackups
	}
	if cmd.Flags().Changed("tests") {
		cfg.IncludeTests = flags.tests
	}
	if cfg.Format == "" {
		cfg.Format = config.FormatText
	}
}
