package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amos-org/amos/internal/config"
	"github.com/amos-org/amos/internal/env"
	"github.com/amos-org/amos/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	modelsRoot string
)

var rootCmd = &cobra.Command{
	Use:   "amos",
	Short: "Browse, preview and arrange 3D models",
	Long: `amos is the Adaptable Modular Organization System viewer.
It browses a catalogue of STL models, previews them and lets you place,
scale and arrange copies of a model on a ground plane.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&modelsRoot, "models", "", "Directory catalogue paths such as /models/x.stl are resolved against")
}

// setup loads the configuration with the flag overrides applied
func setup() (*env.Environment, error) {
	return env.Setup(configPath, env.Overrides{LogLevel: logLevel, ModelsRoot: modelsRoot}, os.Stderr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
