package shell

import (
	"testing"

	"github.com/amos-org/amos/internal/catalogue"
	"github.com/stretchr/testify/assert"
)

func TestCatalogueClickDrivesShell(t *testing.T) {
	s := New(catalogue.PageCatalogue, "/models/base_model.stl")

	var seen []State
	s.OnChange(func(st State) { seen = append(seen, st) })

	b := catalogue.NewBrowser(catalogue.DefaultItems(), s)
	b.Click(b.Items()[2])

	assert.Equal(t, State{Page: catalogue.PageVisualizer, SelectedModel: "/models/bookshelf.stl"}, s.State())
	assert.Equal(t, []State{
		{Page: catalogue.PageCatalogue, SelectedModel: "/models/bookshelf.stl"},
		{Page: catalogue.PageVisualizer, SelectedModel: "/models/bookshelf.stl"},
	}, seen)
}

func TestUnchangedStateIsNotBroadcast(t *testing.T) {
	s := New(catalogue.PageAbout, "")

	calls := 0
	s.OnChange(func(State) { calls++ })
	s.SetActivePage(catalogue.PageAbout)
	s.SelectModel("")

	assert.Zero(t, calls)
}
