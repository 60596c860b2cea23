// Package app is the raylib front-end of the visualizer: the scene is
// drawn on the GPU and a side panel offers the scale and add controls.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amos-org/amos/internal/config"
	"github.com/amos-org/amos/internal/visualizer"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/watcher"
	"github.com/amos-org/amos/version"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	background = rl.NewColor(250, 250, 250, 255)
	gridColor  = rl.NewColor(200, 200, 200, 255)
)

// App is the raylib window state
type App struct {
	vis      *visualizer.Visualizer
	log      *slog.Logger
	meshes   *meshCache
	material rl.Material

	Camera      CameraState
	Interaction InteractionState
	UI          UIState
}

// Run opens the visualizer for modelPath and blocks until the window is
// closed or ctx is done
func Run(ctx context.Context, cfg config.Config, l *loader.Loader, modelPath string, log *slog.Logger) error {
	opts := []visualizer.Option{visualizer.WithLogger(log)}
	if cfg.Watch {
		fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, log)
		if err != nil {
			log.Warn("auto-reload disabled", "err", err)
		} else {
			defer fw.Close()
			fw.Start(ctx)
			opts = append(opts, visualizer.WithWatcher(fw))
		}
	}

	vis := visualizer.New(l, modelPath, opts...)
	defer vis.Close()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), fmt.Sprintf("A.M.O.S. %s - %s", version.Version, modelPath))
	if !rl.IsWindowReady() {
		return errors.New("failed to open window")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		vis:      vis,
		log:      log,
		meshes:   newMeshCache(vis.Stage()),
		material: rl.LoadMaterialDefault(),
		Camera: CameraState{
			defaultDist:   defaultDistance,
			defaultAngleX: defaultAngleX,
			defaultAngleY: defaultAngleY,
			camera: rl.Camera3D{
				Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
				Fovy:       45.0,
				Projection: rl.CameraPerspective,
			},
		},
		UI: UIState{hovered: -1},
	}
	app.resetCameraView()
	defer app.meshes.unloadAll()

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		// Loads finish on other goroutines; each frame draws the latest state.
		items := vis.Frame()

		app.handleInput(items)
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(background)

		rl.BeginMode3D(app.Camera.camera)
		app.drawStage()
		app.drawItems(items)
		rl.EndMode3D()

		app.drawUI(items)
		rl.EndDrawing()

		app.meshes.sweep()
	}

	return nil
}
