package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/amos-org/amos/version"
)

const aboutText = `# Welcome to A.M.O.S.

A.M.O.S. (Adaptable Modular Organization System) helps you manage,
visualize and organize your workspace. Browse the catalogue, open a
model in the visualizer, then place, scale and arrange as many copies
of it as your space needs.
`

func newAboutPage() fyne.CanvasObject {
	text := widget.NewRichTextFromMarkdown(aboutText)
	text.Wrapping = fyne.TextWrapWord

	build := widget.NewLabel("Version " + version.GetFullVersion())
	build.Importance = widget.LowImportance

	return container.NewCenter(container.NewGridWrap(fyne.NewSize(640, 320), container.NewVBox(text, build)))
}
