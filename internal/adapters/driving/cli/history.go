package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded learn runs",
	Long: `Lists recorded learn runs, newest first. Every run is recorded,
including failed ones, with its data file, duration and outcome.`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one recorded run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("%s  %s  %s  %s\n",
			rec.ID,
			rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Duration().Round(outcomePrecision(rec)),
			outcomeWord(rec))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	rec, err := historyService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("retrieving run: %w", err)
	}

	cmd.Printf("Run %s\n", rec.ID)
	cmd.Printf("  Started:   %s\n", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("  Duration:  %s\n", rec.Duration())
	cmd.Printf("  Data file: %s\n", rec.DataPath)
	cmd.Printf("  Variables: %d\n", rec.Variables)
	cmd.Printf("  Outcome:   %s\n", outcomeWord(rec))
	if rec.Succeeded {
		cmd.Printf("  Score:     %g\n", rec.Score)
		cmd.Printf("  Arcs:      %d\n", rec.Arcs)
	} else {
		cmd.Printf("  Exit code: %d\n", rec.ExitCode)
		cmd.Printf("  Failure:   %s\n", rec.Failure)
	}
	return nil
}

func outcomeWord(rec domain.RunRecord) string {
	if rec.Succeeded {
		return fmt.Sprintf("ok (score %g, %d arcs)", rec.Score, rec.Arcs)
	}
	return "failed"
}

// outcomePrecision keeps sub-second runs readable without drowning
// longer runs in digits.
func outcomePrecision(rec domain.RunRecord) time.Duration {
	if rec.Duration() < time.Second {
		return time.Millisecond
	}
	return time.Second
}
