// Package gui is the fyne front-end. One window hosts the catalogue, the
// visualizer and the about page; the shell decides which one is shown.
package gui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/amos-org/amos/internal/catalogue"
	"github.com/amos-org/amos/internal/config"
	"github.com/amos-org/amos/internal/shell"
	"github.com/amos-org/amos/internal/visualizer"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/watcher"
	"github.com/amos-org/amos/version"
)

// App is the fyne application window
type App struct {
	window  fyne.Window
	log     *slog.Logger
	watcher *watcher.FileWatcher

	shell      *shell.Shell
	visualizer *visualizer.Visualizer
	catalogue  *cataloguePage
	scene      *visualizerPage

	pages   map[catalogue.Page]fyne.CanvasObject
	content *fyne.Container
}

// New builds the window. Loads start immediately; call Run to show it.
func New(a fyne.App, cfg config.Config, l *loader.Loader, log *slog.Logger) *App {
	w := a.NewWindow("A.M.O.S. " + version.Version)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	app := &App{
		window: w,
		log:    log,
		shell:  shell.New(catalogue.PageCatalogue, cfg.BaseModel),
	}

	var opts []visualizer.Option
	opts = append(opts, visualizer.WithLogger(log))
	if cfg.Watch {
		fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, log)
		if err != nil {
			log.Warn("auto-reload disabled", "err", err)
		} else {
			app.watcher = fw
			opts = append(opts, visualizer.WithWatcher(fw))
		}
	}
	app.visualizer = visualizer.New(l, cfg.BaseModel, opts...)

	browser := catalogue.NewBrowser(catalogue.DefaultItems(), app.shell)
	app.catalogue = newCataloguePage(browser, l)
	app.scene = newVisualizerPage(app.visualizer, w)

	app.pages = map[catalogue.Page]fyne.CanvasObject{
		catalogue.PageCatalogue:  app.catalogue.content,
		catalogue.PageVisualizer: app.scene.content,
		catalogue.PageAbout:      newAboutPage(),
	}
	app.content = container.NewStack()
	app.shell.OnChange(app.navigate)

	w.SetContent(container.NewBorder(app.toolbar(), nil, nil, nil, app.content))
	app.show(app.shell.State().Page)
	return app
}

// Shell exposes the navigation state
func (a *App) Shell() *shell.Shell { return a.shell }

func (a *App) toolbar() fyne.CanvasObject {
	nav := func(label string, page catalogue.Page) *widget.Button {
		return widget.NewButton(label, func() { a.shell.SetActivePage(page) })
	}
	return container.NewHBox(
		nav("Catalogue", catalogue.PageCatalogue),
		nav("Visualizer", catalogue.PageVisualizer),
		nav("About", catalogue.PageAbout),
	)
}

// navigate applies a shell change; it runs on the goroutine that changed
// the shell, which is the fyne goroutine for every caller in this package.
func (a *App) navigate(state shell.State) {
	a.visualizer.SetModelPath(state.SelectedModel)
	a.show(state.Page)
}

func (a *App) show(page catalogue.Page) {
	obj, ok := a.pages[page]
	if !ok {
		a.log.Warn("unknown page", "page", page)
		return
	}
	a.content.Objects = []fyne.CanvasObject{obj}
	a.content.Refresh()
}

// Run shows the window and blocks until it is closed
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.watcher != nil {
		a.watcher.Start(ctx)
	}
	a.window.ShowAndRun()
	a.Close()
}

// Close cancels all loads and stops watching files
func (a *App) Close() {
	a.catalogue.close()
	a.visualizer.Close()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("failed to close file watcher", "err", err)
		}
	}
}
