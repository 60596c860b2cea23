package main

import (
	"fmt"

	"github.com/amos-org/amos/internal/catalogue"
	"github.com/spf13/cobra"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "List the catalogue items",
	Args:  cobra.NoArgs,
	RunE:  runCatalogue,
}

func init() {
	rootCmd.AddCommand(catalogueCmd)
}

func runCatalogue(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-4s %-18s %-28s %s\n", "ID", "Title", "Model", "Description")
	for _, item := range catalogue.DefaultItems() {
		fmt.Fprintf(out, "%-4d %-18s %-28s %s\n", item.ID, item.Title, item.ModelPath, item.Description)
	}
	return nil
}
