package main

import (
	"github.com/amos-org/amos/internal/app"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [model]",
	Short: "Open the GPU visualizer",
	Long:  "Open the raylib visualizer showing model, or the configured base model when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	model := env.Config.BaseModel
	if len(args) == 1 {
		model = args[0]
	}
	return app.Run(cmd.Context(), env.Config, env.Loader, model, env.Log)
}
