package main

import (
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/amos-org/amos/internal/gui"
	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the catalogue and visualizer window",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, _ []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID("org.amos.viewer")
	gui.New(a, env.Config, env.Loader, env.Log).Run(cmd.Context())
	return nil
}
