package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"fyne.io/fyne/v2"

	"github.com/go-drift/fluent-gallery/internal/gallery"
	"github.com/go-drift/fluent-gallery/pkg/config"
	"github.com/go-drift/fluent-gallery/pkg/desktop"
	"github.com/go-drift/fluent-gallery/pkg/engine"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Open the gallery window",
		Long: `Open the gallery in a desktop window.

Settings come from gallery.yaml and .env in the project directory, then
from GALLERY_* environment variables. Edits to either file while the
window is open re-apply the theme and log settings.

Flags:
  --theme MODE        Start in light or dark mode
  --debug-addr ADDR   Serve the widget tree over HTTP (e.g. localhost:9229)`,
		Usage: "gallery run [--theme MODE] [--debug-addr ADDR]",
		Run:   runRun,
	})
}

type runOptions struct {
	theme     string
	debugAddr string
}

func parseRunArgs(args []string) (runOptions, error) {
	var opts runOptions
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.theme, "theme", "", "light or dark")
	fs.StringVar(&opts.debugAddr, "debug-addr", "", "debug server address")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	p, err := loadProject()
	if err != nil {
		return err
	}
	p.applyRunOptions(p.cfg, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env, registry, err := p.environment(ctx)
	if err != nil {
		return err
	}
	g, err := p.newGallery(env, registry, p.cfg.Theme)
	if err != nil {
		return err
	}

	var debug *engine.DebugServer
	if p.cfg.Debug.Addr != "" {
		debug = engine.NewDebugServer(p.log)
		port, err := debug.Start(p.cfg.Debug.Addr)
		if err != nil {
			return fmt.Errorf("failed to start debug server: %w", err)
		}
		defer debug.Stop()
		p.log.WithField("port", port).Info("debug server listening")
	}

	wc := p.cfg.Window
	window := desktop.NewWindow(g, env, desktop.Options{
		AppID:   p.cfg.App.ID,
		Title:   wc.Title,
		Size:    fyne.NewSize(float32(wc.Width), float32(wc.Height)),
		MinSize: fyne.NewSize(float32(wc.MinWidth), float32(wc.MinHeight)),
		Log:     p.log,
		Debug:   debug,
	})

	err = config.Watch(ctx, p.cfg.Root, func(cfg *config.Resolved, err error) {
		if err != nil {
			p.log.WithError(err).Warn("config reload failed")
			return
		}
		p.applyRunOptions(cfg, opts)
		p.reload(cfg, window)
	})
	if err != nil {
		p.log.WithError(err).Warn("config reload disabled")
	}

	p.log.WithField("route", g.Route()).Info("gallery started")
	window.ShowAndRun()
	return nil
}

// applyRunOptions lets command-line flags win over the files.
func (p *project) applyRunOptions(cfg *config.Resolved, opts runOptions) {
	if opts.theme != "" {
		cfg.Theme.Mode = opts.theme
	}
	if opts.debugAddr != "" {
		cfg.Debug.Addr = opts.debugAddr
	}
}

// reload applies a re-read configuration to the open window. Window size
// and fonts are fixed for the lifetime of the window.
func (p *project) reload(cfg *config.Resolved, window *desktop.Window) {
	if err := cfg.Log.Apply(p.logger); err != nil {
		p.log.WithError(err).Warn("log settings not applied")
	}
	brightness, accent, err := themeSelection(cfg.Theme)
	if err != nil {
		p.log.WithError(err).Warn("theme settings not applied")
		return
	}
	window.SetTitle(cfg.Window.Title)
	window.Deliver(gallery.SetTheme{Brightness: brightness, Accent: accent})
	p.log.WithField("theme", brightness.String()).Info("config reloaded")
}
