// Package env assembles the configuration, logger and model loader the
// amos binaries run with.
package env

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amos-org/amos/internal/config"
	"github.com/amos-org/amos/internal/logging"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/openscad"
)

// httpTimeout bounds each model download
const httpTimeout = 30 * time.Second

// Overrides replace configuration values when not empty
type Overrides struct {
	LogLevel   string
	ModelsRoot string
}

// Environment is what every front-end needs to start
type Environment struct {
	Config config.Config
	Log    *slog.Logger
	Loader *loader.Loader
}

// Setup loads the configuration at configPath, applies overrides and
// builds a logger writing to logOut. The logger becomes the slog default.
func Setup(configPath string, overrides Overrides, logOut io.Writer) (*Environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.ModelsRoot != "" {
		cfg.ModelsRoot = overrides.ModelsRoot
	}

	log, err := logging.New(cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)

	return &Environment{Config: cfg, Log: log, Loader: NewLoader(cfg, log)}, nil
}

// NewLoader reads local models below cfg.ModelsRoot, fetches URLs over
// HTTP and renders OpenSCAD sources
func NewLoader(cfg config.Config, log *slog.Logger) *loader.Loader {
	return loader.New(
		loader.WithSource(loader.MultiSource{
			Files: loader.FileSource{Root: cfg.ModelsRoot},
			HTTP:  loader.HTTPSource{Client: &http.Client{Timeout: httpTimeout}},
		}),
		loader.WithOpenSCAD(openscad.NewRenderer(cfg.ModelsRoot)),
		loader.WithLogger(log),
	)
}
