package app

import (
	"fmt"

	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/internal/scene"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth = 280
	rowHeight  = 26
	buttonSize = 22
	fontSize   = 16
	smallFont  = 14
)

var (
	panelColor  = rl.NewColor(30, 34, 42, 230)
	buttonColor = rl.NewColor(70, 80, 96, 255)
	hoverColor  = rl.NewColor(100, 194, 97, 255)
	axisNames   = [3]string{"X", "Y", "Z"}
)

type button struct {
	rect   rl.Rectangle
	label  string
	action func()
}

type label struct {
	text  string
	x, y  float32
	size  int32
	color rl.Color
}

// panel is the laid out side panel. Drawing and hit testing share it so
// the two never disagree.
type panel struct {
	bounds  rl.Rectangle
	buttons []button
	labels  []label
}

// layoutPanel lays out the side panel for the current frame. Instances
// that do not fit the window height are left out.
func (app *App) layoutPanel(items []render.Item) panel {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	p := panel{bounds: rl.Rectangle{X: screenWidth - panelWidth, Y: 0, Width: panelWidth, Height: screenHeight}}
	x := p.bounds.X + 10
	y := float32(10)

	p.buttons = append(p.buttons, button{
		rect:   rl.Rectangle{X: x, Y: y, Width: panelWidth - 20, Height: 30},
		label:  "Add Model",
		action: func() { app.vis.AddModel() },
	})
	y += 40

	p.labels = append(p.labels, label{text: fmt.Sprintf("Model: %s", app.vis.ModelPath()), x: x, y: y, size: smallFont, color: rl.LightGray})
	y += rowHeight

	composer := app.vis.Composer()
	for _, item := range items {
		if y+4*rowHeight > screenHeight-2*rowHeight {
			p.labels = append(p.labels, label{text: "...", x: x, y: y, size: fontSize, color: rl.LightGray})
			break
		}

		title := fmt.Sprintf("Model %d", item.ID)
		switch item.Kind {
		case render.KindPlaceholder:
			title += " (loading)"
		case render.KindFailed:
			title += " (failed)"
		}
		p.labels = append(p.labels, label{text: title, x: x, y: y, size: fontSize, color: rl.Yellow})
		y += rowHeight

		for axis := 0; axis < 3; axis++ {
			axis := axis
			id := item.ID
			step := func(delta float64) func() {
				return func() {
					if _, err := composer.StepScale(id, axis, delta); err != nil {
						app.log.Debug("scale step rejected", "id", id, "axis", axis, "err", err)
					}
				}
			}

			p.labels = append(p.labels, label{text: axisNames[axis], x: x + 10, y: y + 3, size: fontSize, color: rl.White})
			p.buttons = append(p.buttons, button{
				rect:   rl.Rectangle{X: x + 40, Y: y, Width: buttonSize, Height: buttonSize},
				label:  "-",
				action: step(-scene.ScaleStep),
			})
			p.labels = append(p.labels, label{
				text:  fmt.Sprintf("%.1f", item.Scale.Component(axis)),
				x:     x + 80,
				y:     y + 3,
				size:  fontSize,
				color: rl.White,
			})
			p.buttons = append(p.buttons, button{
				rect:   rl.Rectangle{X: x + 140, Y: y, Width: buttonSize, Height: buttonSize},
				label:  "+",
				action: step(scene.ScaleStep),
			})
			y += rowHeight
		}
	}

	help := "Drag model: move   Drag: orbit   Shift+drag: pan\nWheel: zoom   A: add   R: reload   Home: reset"
	p.labels = append(p.labels, label{text: help, x: x, y: screenHeight - 2*rowHeight - 6, size: 10, color: rl.Gray})
	return p
}

// drawUI draws the side panel
func (app *App) drawUI(items []render.Item) {
	p := app.layoutPanel(items)

	rl.DrawRectangleRec(p.bounds, panelColor)
	for i, b := range p.buttons {
		col := buttonColor
		if i == app.UI.hovered {
			col = hoverColor
		}
		rl.DrawRectangleRec(b.rect, col)

		textWidth := rl.MeasureText(b.label, fontSize)
		tx := int32(b.rect.X + (b.rect.Width-float32(textWidth))/2)
		ty := int32(b.rect.Y + (b.rect.Height-fontSize)/2)
		rl.DrawText(b.label, tx, ty, fontSize, rl.White)
	}
	for _, l := range p.labels {
		rl.DrawText(l.text, int32(l.x), int32(l.y), l.size, l.color)
	}

	if dragged, ok := app.vis.Dragger().Target(); ok {
		rl.DrawText(fmt.Sprintf("Moving model %d", dragged), 10, 10, fontSize, rl.DarkGray)
	}
}
