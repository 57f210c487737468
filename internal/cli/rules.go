package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/callshift/internal/configloader"
	"github.com/yaklabco/callshift/internal/logging"
)

const formatJSON = "json"

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List configured migration rules",
		Long: `List the migration rules of the resolved configuration, with their
target method, package allow-list, and replacement templates.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func runRules(cmd *cobra.Command, format string) error {
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
		return err
	}

	rules := loadResult.Config.Rules

	if format == formatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rules); err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}
		return nil
	}

	logger := logging.Default()
	logger.Info("configured rules", logging.FieldPath, loadResult.LoadedFrom)
	for _, rule := range rules {
		logger.Info(rule.Name,
			logging.FieldMethod, rule.Method,
			logging.FieldPackages, rule.Packages,
			"replacement", fmt.Sprintf("%s(left).%s(right)", rule.Outer, rule.Inner),
		)
	}
	return nil
}
