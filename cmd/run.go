package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhkim/kwiz/internal/app"
	"github.com/dhkim/kwiz/internal/eventlog"
	"github.com/dhkim/kwiz/internal/progress"
	"github.com/dhkim/kwiz/internal/session"
	"github.com/dhkim/kwiz/internal/vocab"
)

// runApp loads the catalog and progress, opens the answer log, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	// The answer log is optional; the quiz runs without lifetime stats.
	var log *eventlog.Log
	var rec session.Recorder
	if logPath, err := resolveLogPath(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "Answer log unavailable:", err)
	} else if log, err = eventlog.Open(logPath); err != nil {
		fmt.Fprintln(os.Stderr, "Answer log unavailable:", err)
		log = nil
	} else {
		defer log.Close()
		rec = log
	}

	co := session.New(catalog, store, rec, direction(settings))
	if len(settings.Categories) > 0 {
		if err := co.SetActive(settings.Categories); err != nil {
			fmt.Fprintln(os.Stderr, "Ignoring configured categories:", err)
		}
	}

	return app.Run(app.Options{
		Coordinator: co,
		Log:         log,
		Typed:       settings.Answer == "typed",
		Columns:     settings.Columns,
	})
}
