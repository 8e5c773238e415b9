// Package cmd defines the kwiz command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhkim/kwiz/internal/config"
	"github.com/dhkim/kwiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "kwiz",
	Short: "Adaptive Korean vocabulary quiz",
	Long:  "kwiz — terminal vocabulary trainer that weights questions toward the words you keep getting wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory with vocabulary JSON files (overrides KWIZ_DATA_DIR env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("db", "", "Path to answer-log SQLite file (overrides KWIZ_DB env var)")

	rootCmd.Flags().Bool("typed", false, "Type answers instead of picking from choices")
	rootCmd.Flags().Bool("reverse", false, "Show the translation and quiz the term")
	rootCmd.Flags().Int("columns", 0, "Question cards per row")
	rootCmd.Flags().StringSlice("categories", nil, "Sections to study (default: all)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveSettings merges flags, environment, and the config file in
// flag > env > file > default order.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	file, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}
	s := config.Resolve(file)

	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		s.DataDir = v
	}
	if cmd.Flags().Changed("typed") {
		if v, _ := cmd.Flags().GetBool("typed"); v {
			s.Answer = "typed"
		} else {
			s.Answer = "choice"
		}
	}
	if cmd.Flags().Changed("reverse") {
		if v, _ := cmd.Flags().GetBool("reverse"); v {
			s.Direction = "translation-to-term"
		} else {
			s.Direction = "term-to-translation"
		}
	}
	if v, _ := cmd.Flags().GetInt("columns"); v > 0 {
		s.Columns = v
	}
	if v, _ := cmd.Flags().GetStringSlice("categories"); len(v) > 0 {
		s.Categories = v
	}
	return s, nil
}

// direction maps the setting string to a quiz direction, defaulting to
// term-to-translation for unknown values.
func direction(s config.Settings) quiz.Direction {
	if s.Direction == "translation-to-term" {
		return quiz.TranslationToTerm
	}
	return quiz.TermToTranslation
}

// resolveLogPath returns the answer-log path using the --db flag, then the
// KWIZ_DB env var, then the default XDG path.
func resolveLogPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, config.EnsureDir(p)
	}
	return config.DefaultLogPath()
}
