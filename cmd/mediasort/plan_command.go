package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/logging"
	"mediasort/internal/organizer"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var (
		workingDir string
		fastParse  bool
		recursive  bool
	)

	cmd := &cobra.Command{
		Use:   "plan SOURCE",
		Short: "Preview where each file would go without transferring anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			opts := optionsFromConfig(cfg)
			opts.Logger = logger
			opts.DryRun = true
			opts.ReportProgress = false
			if cmd.Flags().Changed("working-dir") {
				expanded, err := config.ExpandPath(workingDir)
				if err != nil {
					return fmt.Errorf("resolve working dir: %w", err)
				}
				opts.WorkingDir = expanded
			}
			if cmd.Flags().Changed("fast") {
				opts.FastParse = fastParse
			}
			if cmd.Flags().Changed("recursive") {
				opts.Recursive = recursive
			}

			result, err := organizer.Run(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderPlanTable(result.Planned))
			fmt.Fprintln(out, renderSummaryTable(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workingDir, "working-dir", "w", "", "Destination root (overrides config)")
	cmd.Flags().BoolVar(&fastParse, "fast", false, "Classify by extension only")
	cmd.Flags().BoolVar(&recursive, "recursive", true, "Descend into subdirectories")

	return cmd
}
