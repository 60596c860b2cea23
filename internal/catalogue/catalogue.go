// Package catalogue is the fixed list of browsable models and the click
// behaviour that hands a model over to the visualizer.
package catalogue

import "github.com/amos-org/amos/pkg/loader"

// Page names a view of the navigation shell
type Page string

const (
	PageCatalogue  Page = "catalogue"
	PageVisualizer Page = "visualizer"
	PageAbout      Page = "about"
)

// Item is one catalogue entry
type Item struct {
	ID          int
	Title       string
	Description string
	ModelPath   string
}

// DefaultItems returns the built-in catalogue
func DefaultItems() []Item {
	return []Item{
		{
			ID:          1,
			Title:       "Video Game Case",
			Description: "A sleek case for organizing your game collection.",
			ModelPath:   "/models/game_case.stl",
		},
		{
			ID:          2,
			Title:       "Office Supplies",
			Description: "Keep your desk clutter-free with this organizer.",
			ModelPath:   "/models/office_supplies.stl",
		},
		{
			ID:          3,
			Title:       "Bookshelf",
			Description: "A modern bookshelf with modular design.",
			ModelPath:   "/models/bookshelf.stl",
		},
	}
}

// Navigator is implemented by the shell hosting the catalogue
type Navigator interface {
	SelectModel(path string)
	SetActivePage(page Page)
}

// Browser presents items and forwards clicks to a Navigator
type Browser struct {
	items []Item
	nav   Navigator
}

// NewBrowser creates a browser over items
func NewBrowser(items []Item, nav Navigator) *Browser {
	return &Browser{items: items, nav: nav}
}

// Items returns the catalogue entries
func (b *Browser) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Click selects the item's model and switches to the visualizer.
// The path is not validated; a bad path surfaces as a load failure there.
func (b *Browser) Click(item Item) {
	b.nav.SelectModel(item.ModelPath)
	b.nav.SetActivePage(PageVisualizer)
}

// Preview is the read-only miniature of one item. Each preview owns its
// own slot, so previews of the same path load independently.
type Preview struct {
	Item Item
	slot *loader.Slot
}

// NewPreviews creates one preview per item and starts loading them.
// onChange is called with the item index whenever a preview's state changes.
func (b *Browser) NewPreviews(l *loader.Loader, onChange func(index int, state loader.State)) []*Preview {
	previews := make([]*Preview, len(b.items))
	for i, item := range b.items {
		i := i
		p := &Preview{Item: item, slot: l.NewSlot()}
		if onChange != nil {
			p.slot.OnChange(func(state loader.State) { onChange(i, state) })
		}
		previews[i] = p
	}
	for _, p := range previews {
		p.slot.Request(p.Item.ModelPath)
	}
	return previews
}

// State returns the preview's geometry state
func (p *Preview) State() loader.State { return p.slot.State() }

// Reload loads the preview's model again
func (p *Preview) Reload() { p.slot.Reload() }

// Close cancels any pending load
func (p *Preview) Close() { p.slot.Close() }
