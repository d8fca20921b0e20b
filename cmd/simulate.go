package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/everforgeworks/umami-lab/internal/autoplay"
	"github.com/everforgeworks/umami-lab/internal/history"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a greedy bot play many runs and summarize the outcomes",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int("runs", 100, "number of runs to play")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	runs, err := cmd.Flags().GetInt("runs")
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	bar := progressbar.NewOptions(runs,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Simulating runs"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	store := history.NewStore(history.Config{Size: runs, TTL: cfg.HistoryTTL})
	summary, err := autoplay.Simulate(cmd.Context(), autoplay.SimConfig{
		Runs:     runs,
		Seed:     seed,
		Recorder: store,
	}, func(autoplay.Result) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	log.Debug("Simulation finished", "runs", summary.Runs, "recorded", store.Len())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Runs:           %d (seed %d)\n", summary.Runs, seed)
	fmt.Fprintf(out, "Victories:      %d\n", summary.Victories)
	fmt.Fprintf(out, "Game overs:     %d\n", summary.GameOvers)
	fmt.Fprintf(out, "Stalled:        %d\n", summary.Stalls)
	fmt.Fprintf(out, "Mean final day: %.2f\n", summary.MeanFinalDay)
	fmt.Fprintf(out, "Best day:       %d\n", summary.BestDay)
	return nil
}
