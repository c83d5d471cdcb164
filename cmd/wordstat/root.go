package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordstat/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var topFlag int

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "wordstat <paragraph>",
		Short: "Analyze a paragraph of text and provide word statistics",
		Long: `Analyze a paragraph of text and provide word statistics.

Reports the total number of words, the number of distinct words, and the most
frequent word. Words are runs of letters, digits, and underscores compared
case-insensitively. Enclose the paragraph in quotes if it contains spaces.`,
		Example:       `  wordstat "Hello world! Hello again!"`,
		Args:          requireParagraph,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var overrides config.Overrides
			if cmd.Flags().Changed("log-level") {
				overrides.LogLevel = &logLevelFlag
			}
			if cmd.Flags().Changed("log-format") {
				overrides.LogFormat = &logFormatFlag
			}
			if cmd.Flags().Changed("top") {
				overrides.TopWords = &topFlag
			}
			_, err := ctx.ensureConfig(overrides)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, ctx, args[0])
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	flags.StringVar(&logFormatFlag, "log-format", "", "Diagnostic log format (auto, console, json)")
	flags.IntVar(&topFlag, "top", 0, "Also list the N most frequent words")

	return rootCmd
}

func requireParagraph(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &usageError{err: errors.New("the following arguments are required: paragraph")}
	case len(args) > 1:
		return &usageError{err: fmt.Errorf("unrecognized arguments: %s", strings.Join(args[1:], " "))}
	}
	return nil
}
