package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhkim/kwiz/internal/eventlog"
	"github.com/dhkim/kwiz/internal/vocab"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete quiz progress and the answer log",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete progress without --yes")
		}

		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		path := filepath.Join(settings.DataDir, vocab.ProgressFileName)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove progress file: %w", err)
		}

		logPath, err := resolveLogPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve answer log path: %w", err)
		}
		log, err := eventlog.Open(logPath)
		if err != nil {
			return fmt.Errorf("open answer log: %w", err)
		}
		defer log.Close()
		if err := log.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset answer log: %w", err)
		}

		fmt.Println("Progress and answer log cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
