package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/logging"
	"mediasort/internal/organizer"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		workingDir string
		moveFiles  bool
		fastParse  bool
		recursive  bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "run SOURCE",
		Short: "Organize every file under SOURCE into the library",
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
			if cmd.Flags().Changed("working-dir") {
				expanded, err := config.ExpandPath(workingDir)
				if err != nil {
					return fmt.Errorf("resolve working dir: %w", err)
				}
				opts.WorkingDir = expanded
			}
			if cmd.Flags().Changed("move") {
				opts.MoveFiles = moveFiles
			}
			if cmd.Flags().Changed("fast") {
				opts.FastParse = fastParse
			}
			if cmd.Flags().Changed("recursive") {
				opts.Recursive = recursive
			}
			if quiet {
				opts.ReportProgress = false
			}
			if opts.ReportProgress && stdoutIsTerminal() {
				opts.Observer = newBarObserver()
			}

			result, err := organizer.Run(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummaryTable(result))
			printFailures(out, result.Failures)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workingDir, "working-dir", "w", "", "Destination root (overrides config)")
	cmd.Flags().BoolVar(&moveFiles, "move", false, "Move files instead of copying them")
	cmd.Flags().BoolVar(&fastParse, "fast", false, "Classify by extension only")
	cmd.Flags().BoolVar(&recursive, "recursive", true, "Descend into subdirectories")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file progress output")

	return cmd
}

func optionsFromConfig(cfg *config.Config) organizer.Options {
	return organizer.Options{
		WorkingDir:     cfg.Paths.WorkingDir,
		ImagesDirName:  cfg.Library.ImagesDir,
		VideosDirName:  cfg.Library.VideosDir,
		UnknownDirName: cfg.Library.UnknownDir,
		MoveFiles:      cfg.Behavior.MoveFiles,
		FastParse:      cfg.Behavior.FastParse,
		Recursive:      cfg.Behavior.Recursive,
		ReportProgress: cfg.Behavior.ReportProgress,
	}
}
