package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/amos-org/amos/internal/catalogue"
	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/pkg/analysis"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/viewer"
)

var unit = geometry.NewVector3(1, 1, 1)

type cataloguePage struct {
	content  fyne.CanvasObject
	cards    []*itemCard
	previews []*catalogue.Preview
}

func newCataloguePage(browser *catalogue.Browser, l *loader.Loader) *cataloguePage {
	p := &cataloguePage{}

	items := browser.Items()
	p.cards = make([]*itemCard, len(items))
	objects := make([]fyne.CanvasObject, len(items))
	for i, item := range items {
		item := item
		p.cards[i] = newItemCard(item, func() { browser.Click(item) })
		objects[i] = p.cards[i]
	}

	p.previews = browser.NewPreviews(l, func(index int, state loader.State) {
		fyne.Do(func() { p.cards[index].setState(state) })
	})
	for i, preview := range p.previews {
		p.cards[i].setState(preview.State())
	}

	p.content = container.NewVScroll(container.NewGridWrap(fyne.NewSize(280, 380), objects...))
	return p
}

func (p *cataloguePage) close() {
	for _, preview := range p.previews {
		preview.Close()
	}
}

// itemCard shows one catalogue item. Tapping anywhere on it opens the
// item in the visualizer; dragging its preview orbits the preview camera.
type itemCard struct {
	widget.BaseWidget

	card    *widget.Card
	view    *viewer.View
	caption *widget.Label
	onTap   func()
}

func newItemCard(item catalogue.Item, onTap func()) *itemCard {
	c := &itemCard{
		view: viewer.NewView(render.UnitCube().BoundingBox(),
			viewer.WithMinSize(fyne.NewSize(240, 200)),
			viewer.WithoutZoom(),
			viewer.WithAutoFrame(),
		),
		caption: widget.NewLabel(""),
		onTap:   onTap,
	}
	description := widget.NewLabel(item.Description)
	description.Wrapping = fyne.TextWrapWord

	c.card = widget.NewCard(item.Title, "", container.NewBorder(nil, container.NewVBox(description, c.caption), nil, nil, c.view))
	c.ExtendBaseWidget(c)
	return c
}

func (c *itemCard) setState(state loader.State) {
	item := render.ItemFor(0, geometry.Vector3{}, unit, state, previewStage)
	c.view.SetScene(sceneFromItems([]render.Item{item}, previewStage))

	switch state.Status {
	case loader.StatusReady:
		c.caption.SetText(analysis.Summarize(state.Model).Caption())
	case loader.StatusFailed:
		c.caption.SetText("Failed to load model")
	default:
		c.caption.SetText("Loading...")
	}
}

// Tapped opens the item
func (c *itemCard) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap()
	}
}

// CreateRenderer creates the renderer for the widget
func (c *itemCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.card)
}
