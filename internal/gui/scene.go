package gui

import (
	"image/color"

	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/viewer"
)

var (
	background = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	gridColor  = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

// previewStage lights catalogue previews from closer by and has no ground
var previewStage = func() scene.Stage {
	stage := scene.DefaultStage
	stage.GroundSize = 0
	stage.Directional.Position = geometry.NewVector3(2, 2, 2)
	return stage
}()

// sceneFromItems converts a draw list into a rasterizer scene lit by stage
func sceneFromItems(items []render.Item, stage scene.Stage) viewer.Scene {
	objects := make([]viewer.Object, 0, len(items))
	for _, item := range items {
		objects = append(objects, viewer.Object{
			ID:       item.ID,
			Model:    item.Model,
			Position: item.Position,
			Scale:    item.Scale,
			Color:    item.Color,

			RotationX: item.RotationX,
		})
	}

	return viewer.Scene{
		Background: background,
		Ground: viewer.Ground{
			Size:      stage.GroundSize,
			Y:         stage.GroundY,
			Color:     stage.GroundColor,
			GridColor: gridColor,
		},
		Objects: objects,
		Shade: func(normal geometry.Vector3, base color.RGBA) color.RGBA {
			return render.Shade(stage, normal, base)
		},
	}
}
