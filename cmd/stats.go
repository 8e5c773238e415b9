package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhkim/kwiz/internal/eventlog"
	"github.com/dhkim/kwiz/internal/progress"
	"github.com/dhkim/kwiz/internal/session"
	"github.com/dhkim/kwiz/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the scoreboard and lifetime totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		catalog, err := vocab.LoadCatalog(settings.DataDir)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}
		store, err := progress.Load(
			filepath.Join(settings.DataDir, vocab.ProgressFileName), catalog.Names())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		co := session.New(catalog, store, nil, direction(settings))

		fmt.Println("Recent scores:")
		for _, score := range co.Scoreboard() {
			fmt.Println("  " + score.String())
		}

		streak := co.Streak()
		fmt.Printf("\nStreak: %d (best %d", streak.Current, streak.Longest)
		if streak.LongestAt != "" {
			fmt.Printf(", set %s", streak.LongestAt)
		}
		fmt.Println(")")

		printLifetime(cmd)
		return nil
	},
}

// printLifetime reports event-log aggregates; failures only warn since the
// windowed scores above are already printed.
func printLifetime(cmd *cobra.Command) {
	logPath, err := resolveLogPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Answer log unavailable:", err)
		return
	}
	log, err := eventlog.Open(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Answer log unavailable:", err)
		return
	}
	defer log.Close()

	ctx := cmd.Context()
	totals, err := log.Totals(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Query answer log:", err)
		return
	}
	if len(totals) == 0 {
		return
	}

	fmt.Println("\nAll time:")
	for _, t := range totals {
		fmt.Printf("  %s: %d/%d (%.0f%%)\n", t.Category, t.Correct, t.Attempts, t.Accuracy()*100)
	}

	hardest, err := log.HardestTerms(ctx, 5)
	if err != nil || len(hardest) == 0 {
		return
	}
	fmt.Println("\nHardest terms:")
	for _, t := range hardest {
		fmt.Printf("  %s (%s): %d/%d\n", t.Term, t.Category, t.Correct, t.Attempts)
	}
}
