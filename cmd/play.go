package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("typed", false, "Type answers instead of picking from choices")
	playCmd.Flags().Bool("reverse", false, "Show the translation and quiz the term")
	playCmd.Flags().Int("columns", 0, "Question cards per row")
	playCmd.Flags().StringSlice("categories", nil, "Sections to study (default: all)")
}
