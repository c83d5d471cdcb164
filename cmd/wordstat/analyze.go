package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wordstat/internal/logging"
	"wordstat/internal/textstats"
)

func runAnalyze(cmd *cobra.Command, ctx *commandContext, paragraph string) error {
	cfg := ctx.configValue()
	baseLogger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	runCtx := logging.WithCorrelationID(cmd.Context(), "")
	baseLogger = logging.WithContext(runCtx, baseLogger)
	ctx.logConfigSource(baseLogger)
	logger := logging.NewComponentLogger(baseLogger, "analyzer")

	if err := runCtx.Err(); err != nil {
		return err
	}

	started := time.Now()
	freq, result, err := textstats.AnalyzeWithFrequencies(paragraph)
	if err != nil {
		logger.Debug("input rejected",
			logging.Error(err),
			logging.Int("input_bytes", len(paragraph)),
		)
		return err
	}
	logger.Debug("analysis complete",
		logging.Int("total_words", result.Total),
		logging.Int("unique_words", result.Unique),
		logging.String("most_frequent_word", result.Word),
		logging.Int("frequency", result.Frequency),
		logging.Duration("elapsed", time.Since(started)),
	)

	// An interrupt that lands mid-analysis suppresses the report entirely.
	if err := runCtx.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeReport(out, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg != nil && cfg.Report.TopWords > 0 {
		if err := writeTopWords(out, freq.Top(cfg.Report.TopWords), result.Total); err != nil {
			return fmt.Errorf("write top words: %w", err)
		}
	}
	return nil
}
