package main

import (
	"fmt"

	"github.com/born-ml/localcopy/internal/verify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verifyExtent  int
	verifyMaxRank int
	verifyLayouts []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check copy and fill results for every rank and layout",
	Long: `Runs the thread, team and range copy and fill scenarios for ranks
1..max-rank below the league dimension, in every configured layout, followed
by a scratch memory round trip. Exits non-zero if any scenario fails.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&verifyExtent, "extent", 0, "extent of every dimension (overrides config)")
	verifyCmd.Flags().IntVar(&verifyMaxRank, "max-rank", 0, "highest rank to check (overrides config)")
	verifyCmd.Flags().StringSliceVar(&verifyLayouts, "layout", nil, "layouts to check: right, left (overrides config)")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	if verifyExtent > 0 {
		cfg.Verify.Extent = verifyExtent
	}
	if verifyMaxRank > 0 {
		cfg.Verify.MaxRank = verifyMaxRank
	}
	if len(verifyLayouts) > 0 {
		cfg.Verify.Layouts = verifyLayouts
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	layouts, err := cfg.VerifyLayouts()
	if err != nil {
		return err
	}

	pc := cfg.ParallelConfig()
	pc.Logger = logger

	logger.Info("verifying local deep copy",
		zap.Int("extent", cfg.Verify.Extent),
		zap.Int("max_rank", cfg.Verify.MaxRank),
		zap.Strings("layouts", cfg.Verify.Layouts),
		zap.Int("workers", pc.NumWorkers))

	report, runErr := verify.Run(verify.Options{
		Extent:   cfg.Verify.Extent,
		MaxRank:  cfg.Verify.MaxRank,
		Layouts:  layouts,
		TeamSize: cfg.Verify.TeamSize,
		Parallel: pc,
	})

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		fmt.Fprintln(out, res)
	}
	failed := len(report.Failed())
	fmt.Fprintf(out, "\n%d scenarios, %d failed\n", len(report.Results), failed)

	if runErr != nil {
		return fmt.Errorf("verification failed: %w", runErr)
	}
	return nil
}
