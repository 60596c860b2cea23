package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fyne.io/fyne/v2/app"
	"github.com/amos-org/amos/internal/config"
	"github.com/amos-org/amos/internal/env"
	"github.com/amos-org/amos/internal/gui"
)

func main() {
	var overrides env.Overrides
	if len(os.Args) > 1 {
		overrides.ModelsRoot = os.Args[1]
	}

	e, err := env.Setup(config.DefaultPath(), overrides, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.NewWithID("org.amos.viewer")
	gui.New(a, e.Config, e.Loader, e.Log).Run(ctx)
}
