package bootstrap

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"loadshedding-stats/connectors/charts"
	"loadshedding-stats/connectors/config"
	ccsv "loadshedding-stats/connectors/csv"
	"loadshedding-stats/connectors/display"
	"loadshedding-stats/connectors/logging"
	"loadshedding-stats/connectors/report"
	dconfig "loadshedding-stats/domain/config"
	"loadshedding-stats/domain/loadshedding"
)

// Overrides are command-line values that win over the config file.
type Overrides struct {
	DataPath string
	Display  string
}

// GUI is a chart viewer driven by a desktop event loop that must own the
// main goroutine.
type GUI interface {
	display.Viewer
	Run()
	Quit()
}

// GUIFactory builds the window viewer for the "window" display mode.
type GUIFactory func(width, height int) GUI

// Env is everything a command needs: config, records and a report renderer.
type Env struct {
	Config dconfig.Config
	Store  *loadshedding.Store
	Report *report.Renderer

	gui GUI
}

// Load reads the config (CONFIG_PATH), sets up logging, loads the records file
// and builds the chart viewer. Tables go to out.
func Load(o Overrides, newGUI GUIFactory, out io.Writer) (*Env, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, err
	}
	if o.DataPath != "" {
		cfg.DataPath = o.DataPath
	}
	if o.Display != "" {
		cfg.Display.Mode = o.Display
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	logging.Init(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	store, err := ccsv.LoadRecords(cfg.DataPath)
	if err != nil {
		slog.Error("data.load.error", "path", cfg.DataPath, "error", err)
		return nil, err
	}
	slog.Info("data.load.done", "path", cfg.DataPath, "records", store.Len(), "areas", len(store.Areas()), "years", store.Years())

	env := &Env{Config: cfg, Store: store}
	var viewer display.Viewer
	if cfg.Display.Mode == dconfig.DisplayWindow {
		if newGUI == nil {
			return nil, errors.New("window display is not available in this build; use -display file or none")
		}
		env.gui = newGUI(cfg.Display.Width, cfg.Display.Height)
		viewer = env.gui
	} else {
		viewer, err = display.New(cfg.Display)
		if err != nil {
			return nil, err
		}
	}
	env.Report = report.New(out, charts.New(cfg.Display.Width, cfg.Display.Height), viewer)
	return env, nil
}

// Run calls fn. In window mode fn runs on its own goroutine while the GUI
// event loop holds the calling (main) goroutine.
func (e *Env) Run(fn func() error) error {
	if e.gui == nil {
		return fn()
	}
	errc := make(chan error, 1)
	go func() {
		errc <- fn()
		e.gui.Quit()
	}()
	e.gui.Run()
	return <-errc
}
