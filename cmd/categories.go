package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhkim/kwiz/internal/vocab"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List vocabulary sections in the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		catalog, err := vocab.LoadCatalog(settings.DataDir)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}
		for _, name := range catalog.Names() {
			pool, _ := catalog.Pool(name)
			fmt.Printf("%s (%d terms)\n", name, len(pool))
		}
		return nil
	},
}
