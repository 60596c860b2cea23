package gui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/internal/visualizer"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/viewer"
)

var axisNames = [3]string{"X", "Y", "Z"}

type visualizerPage struct {
	content fyne.CanvasObject

	vis    *visualizer.Visualizer
	window fyne.Window
	view   *viewer.View
	model  *widget.Label
	list   *fyne.Container
	rows   map[int]*scaleRow
}

func newVisualizerPage(vis *visualizer.Visualizer, window fyne.Window) *visualizerPage {
	p := &visualizerPage{
		vis:    vis,
		window: window,
		model:  widget.NewLabel(""),
		list:   container.NewVBox(),
		rows:   make(map[int]*scaleRow),
	}

	dragger := vis.Dragger()
	initial := geometry.NewBoundingBox()
	initial.Extend(geometry.NewVector3(-3, -0.5, -3))
	initial.Extend(geometry.NewVector3(3, 2, 3))
	p.view = viewer.NewView(initial,
		viewer.WithMinSize(fyne.NewSize(600, 500)),
		viewer.WithDragHandler(&viewer.DragHandler{
			Start: func(id int) bool { return dragger.Begin(id) == nil },
			Move:  func(_ int, position geometry.Vector3) { dragger.Update(position) },
			End:   func(int) { dragger.End() },
		}),
	)

	add := widget.NewButton("Add Model", func() { vis.AddModel() })
	reload := widget.NewButton("Reload", func() { vis.Reload() })

	sidebar := container.NewBorder(
		container.NewVBox(p.model, container.NewGridWithColumns(2, add, reload), widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(p.list),
	)
	split := container.NewHSplit(p.view, sidebar)
	split.Offset = 0.75
	p.content = split

	vis.OnChange(func() { fyne.Do(p.refresh) })
	p.refresh()
	return p
}

// refresh redraws the scene and brings the scale rows in line with the
// current snapshot
func (p *visualizerPage) refresh() {
	p.model.SetText(fmt.Sprintf("Model: %s", p.vis.ModelPath()))
	p.view.SetScene(sceneFromItems(p.vis.Frame(), p.vis.Stage()))

	for _, inst := range p.vis.Composer().Snapshot().Instances() {
		row, ok := p.rows[inst.ID]
		if !ok {
			row = newScaleRow(p.vis, inst.ID)
			p.rows[inst.ID] = row
			p.list.Add(row.content)
		}
		row.show(inst, p.window.Canvas().Focused())
	}
}

// scaleRow holds the three scale entries of one instance
type scaleRow struct {
	content fyne.CanvasObject
	vis     *visualizer.Visualizer
	id      int
	entries [3]*widget.Entry
	scale   geometry.Vector3
}

func newScaleRow(vis *visualizer.Visualizer, id int) *scaleRow {
	r := &scaleRow{vis: vis, id: id}

	form := container.NewGridWithColumns(6)
	for axis := range r.entries {
		axis := axis
		entry := widget.NewEntry()
		// Partial input such as "-" or "0." is applied once it parses.
		entry.OnChanged = func(text string) { _, _ = vis.SetScale(id, axis, text) }
		entry.OnSubmitted = func(text string) { r.submit(axis, text) }
		r.entries[axis] = entry
		form.Add(widget.NewLabel(axisNames[axis]))
		form.Add(entry)
	}

	r.content = container.NewVBox(widget.NewLabel(fmt.Sprintf("Model %d scale", id)), form)
	return r
}

// submit applies text to axis and reverts the entry when it is rejected
func (r *scaleRow) submit(axis int, text string) {
	inst, err := r.vis.SetScale(r.id, axis, text)
	if err != nil {
		r.entries[axis].SetText(formatScale(r.scale.Component(axis)))
		return
	}
	r.scale = inst.Scale
	r.entries[axis].SetText(formatScale(inst.Scale.Component(axis)))
}

// show updates every entry except the one being edited
func (r *scaleRow) show(inst scene.Instance, focused fyne.Focusable) {
	r.scale = inst.Scale
	for axis, entry := range r.entries {
		if fyne.Focusable(entry) == focused {
			continue
		}
		text := formatScale(inst.Scale.Component(axis))
		if entry.Text != text {
			entry.SetText(text)
		}
	}
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
