package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/amos-org/amos/pkg/geometry"
)

// DragHandler receives object drags. Start returns false to refuse the
// drag, in which case the gesture orbits the camera instead.
type DragHandler struct {
	Start func(id int) bool
	Move  func(id int, position geometry.Vector3)
	End   func(id int)
}

// View is a fyne widget that rasterizes a Scene with an orbit camera.
// All methods must be called on the fyne goroutine.
type View struct {
	widget.BaseWidget

	scene     Scene
	camera    *Camera
	raster    *canvas.Raster
	minSize   fyne.Size
	zoomable  bool
	autoFrame bool

	drag      *DragHandler
	dragStart *fyne.Position
	dragID    int
	dragging  bool
	grab      geometry.Vector3
}

// ViewOption configures a View
type ViewOption func(*View)

// WithMinSize sets the minimum size of the widget
func WithMinSize(size fyne.Size) ViewOption {
	return func(v *View) { v.minSize = size }
}

// WithoutZoom disables scroll zooming
func WithoutZoom() ViewOption {
	return func(v *View) { v.zoomable = false }
}

// WithAutoFrame re-frames the camera on the scene bounds whenever the
// scene changes
func WithAutoFrame() ViewOption {
	return func(v *View) { v.autoFrame = true }
}

// WithDragHandler enables moving objects by dragging them
func WithDragHandler(h *DragHandler) ViewOption {
	return func(v *View) { v.drag = h }
}

// NewView creates a view framing bbox
func NewView(bbox geometry.BoundingBox, opts ...ViewOption) *View {
	v := &View{
		camera:   NewCamera(bbox),
		minSize:  fyne.NewSize(400, 400),
		zoomable: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// Camera exposes the camera for programmatic control
func (v *View) Camera() *Camera { return v.camera }

// SetScene replaces the drawn scene
func (v *View) SetScene(scene Scene) {
	v.scene = scene
	if v.autoFrame {
		if bbox := scene.Bounds(); !bbox.IsEmpty() {
			v.camera.Frame(bbox)
		}
	}
	v.Refresh()
}

func (v *View) draw(width, height int) image.Image {
	return Rasterize(v.scene, v.camera, width, height)
}

// CreateRenderer creates the renderer for the widget
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return &viewRenderer{view: v}
}

// Dragged moves the grabbed object or orbits the camera
func (v *View) Dragged(event *fyne.DragEvent) {
	if v.dragStart == nil {
		start := event.Position.Subtract(event.Dragged)
		v.dragStart = &start
		v.beginObjectDrag(start)
	}

	if v.dragging {
		if p, ok := v.groundPoint(event.Position); ok && v.drag.Move != nil {
			v.drag.Move(v.dragID, p.Add(v.grab))
		}
		return
	}

	v.camera.Rotate(float64(-event.Dragged.DY)*0.01, float64(event.Dragged.DX)*0.01)
	v.Refresh()
}

func (v *View) beginObjectDrag(at fyne.Position) {
	if v.drag == nil {
		return
	}
	size := v.Size()
	id, ok := Pick(v.scene, v.camera, float64(at.X), float64(at.Y), float64(size.Width), float64(size.Height))
	if !ok {
		return
	}
	if v.drag.Start != nil && !v.drag.Start(id) {
		return
	}

	var position geometry.Vector3
	for _, obj := range v.scene.Objects {
		if obj.ID == id {
			position = obj.Position
		}
	}
	hit, ok := v.groundPoint(at)
	if !ok {
		hit = position
	}
	v.dragID = id
	v.dragging = true
	v.grab = position.Sub(hit)
}

func (v *View) groundPoint(at fyne.Position) (geometry.Vector3, bool) {
	size := v.Size()
	return v.camera.GroundPoint(float64(at.X), float64(at.Y), float64(size.Width), float64(size.Height), v.scene.Ground.Y)
}

// DragEnd finishes an object drag or orbit
func (v *View) DragEnd() {
	if v.dragging && v.drag.End != nil {
		v.drag.End(v.dragID)
	}
	v.dragStart = nil
	v.dragging = false
}

// Scrolled zooms the camera
func (v *View) Scrolled(event *fyne.ScrollEvent) {
	if !v.zoomable {
		return
	}
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Refresh()
}

type viewRenderer struct {
	view *View
}

func (r *viewRenderer) Layout(size fyne.Size) {
	r.view.raster.Resize(size)
}

func (r *viewRenderer) MinSize() fyne.Size {
	return r.view.minSize
}

func (r *viewRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *viewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.raster}
}

func (r *viewRenderer) Destroy() {}
