package cmd

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/fluent-gallery/internal/gallery"
	"github.com/go-drift/fluent-gallery/pkg/config"
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/engine"
	"github.com/go-drift/fluent-gallery/pkg/fonts"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
)

// allPages selects every page for snapshot.
const allPages = "all"

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render pages to PNG without a window",
		Long: `Render gallery pages to PNG files without opening a window.

With --page all, every page is written into the --out directory as
<route>.png, with the home page as home.png.

Flags:
  --page ROUTE    Page to render, or "all" (default: /)
  --out PATH      Output file, or directory for --page all (default: gallery.png)
  --width N       Width in pixels (default: window width)
  --height N      Height in pixels (default: window height)
  --theme MODE    light or dark`,
		Usage: "gallery snapshot [--page ROUTE] [--out PATH] [--width N] [--height N] [--theme MODE]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	page   string
	out    string
	width  float64
	height float64
	theme  string
}

func parseSnapshotArgs(args []string) (snapshotOptions, error) {
	var opts snapshotOptions
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.page, "page", gallery.HomeRoute, "page route")
	fs.StringVar(&opts.out, "out", "", "output path")
	fs.Float64Var(&opts.width, "width", 0, "width in pixels")
	fs.Float64Var(&opts.height, "height", 0, "height in pixels")
	fs.StringVar(&opts.theme, "theme", "", "light or dark")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("snapshot size must not be negative")
	}
	if opts.page != allPages && opts.page != gallery.HomeRoute {
		if _, ok := gallery.Lookup(opts.page); !ok {
			return opts, fmt.Errorf("unknown page %q", opts.page)
		}
	}
	return opts, nil
}

func runSnapshot(args []string) error {
	opts, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}
	p, err := loadProject()
	if err != nil {
		return err
	}
	if opts.theme != "" {
		p.cfg.Theme.Mode = opts.theme
	}
	if opts.width == 0 {
		opts.width = p.cfg.Window.Width
	}
	if opts.height == 0 {
		opts.height = p.cfg.Window.Height
	}

	env, registry, err := p.environment(context.Background())
	if err != nil {
		return err
	}

	targets := snapshotTargets(opts)
	if opts.page == allPages {
		if err := os.MkdirAll(opts.out, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", opts.out, err)
		}
	}
	for _, target := range targets {
		img, err := p.renderPage(env, registry, p.cfg.Theme, target.route, opts.width, opts.height)
		if err != nil {
			return err
		}
		if err := writePNG(target.path, img); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s (%s)\n", target.path, target.route)
	}
	return nil
}

type snapshotTarget struct {
	route string
	path  string
}

// snapshotTargets maps the requested pages to output files.
func snapshotTargets(opts snapshotOptions) []snapshotTarget {
	if opts.page != allPages {
		out := opts.out
		if out == "" {
			out = "gallery.png"
		}
		return []snapshotTarget{{route: opts.page, path: out}}
	}
	dir := opts.out
	if dir == "" {
		dir = "snapshots"
	}
	targets := []snapshotTarget{{route: gallery.HomeRoute, path: filepath.Join(dir, snapshotName(gallery.HomeRoute))}}
	for _, page := range gallery.Pages() {
		targets = append(targets, snapshotTarget{route: page.Route, path: filepath.Join(dir, snapshotName(page.Route))})
	}
	return targets
}

// snapshotName turns a route into a file name: "/pick-list" is
// "pick-list.png" and "/" is "home.png".
func snapshotName(route string) string {
	name := strings.ReplaceAll(strings.Trim(route, "/"), "/", "-")
	if name == "" {
		name = "home"
	}
	return name + ".png"
}

// renderPage paints route into an image of the given logical size.
func (p *project) renderPage(env *core.Env, registry *fonts.Registry, tc config.ThemeConfig, route string, width, height float64) (*image.RGBA, error) {
	g, err := p.newGallery(env, registry, tc)
	if err != nil {
		return nil, err
	}
	runtime := engine.NewRuntime(g, env, input.NewMemoryClipboard(), p.log)
	if route != gallery.HomeRoute {
		runtime.Deliver(gallery.Navigate{Route: route})
		if g.Route() != route {
			return nil, fmt.Errorf("unknown page %q", route)
		}
	}
	runtime.Resize(graphics.Size{Width: width, Height: height})

	canvas := graphics.NewImageCanvas(int(math.Ceil(width)), int(math.Ceil(height)))
	runtime.Paint(canvas)
	return canvas.Image(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
