// Package gallery is the Fluent gallery application: a registry of pages
// showing the widget toolkit, driven as an engine.Program.
package gallery

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/fonts"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/style"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

// Navigate opens the page at Route on top of the current one.
type Navigate struct {
	Route string
}

// Back returns to the previous page.
type Back struct{}

// ToggleTheme switches between the light and dark palettes.
type ToggleTheme struct{}

// SetTheme selects a palette. A zero Accent keeps the palette's accent.
type SetTheme struct {
	Brightness theme.Brightness
	Accent     graphics.Color
}

// Options configures a Gallery.
type Options struct {
	Brightness theme.Brightness
	Accent     graphics.Color
	// Typography is the result of font registration. An empty IconFamily
	// draws icon fallbacks.
	Typography core.Typography
	// Fonts is the discovery result shown on the typography page.
	Fonts *fonts.Registry
	Log   *logrus.Entry
}

// Gallery is the application state.
type Gallery struct {
	history    []string
	brightness theme.Brightness
	accent     graphics.Color
	theme      *theme.ThemeData
	typography core.Typography
	fonts      *fonts.Registry
	log        *logrus.Entry

	numbers    numbers
	fruit      *string
	accentName string
}

var _ interface {
	Update(msg any)
	View() core.Widget
	Theme() style.Catalog
} = (*Gallery)(nil)

// New creates a gallery on the home page.
func New(opts Options) *Gallery {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	g := &Gallery{
		history:    []string{HomeRoute},
		brightness: opts.Brightness,
		accent:     opts.Accent,
		typography: opts.Typography,
		fonts:      opts.Fonts,
		log:        log.WithField("component", "gallery"),
		numbers:    defaultNumbers(),
		accentName: accentDefault,
	}
	if g.typography.UIFamily == "" {
		g.typography.UIFamily = graphics.DefaultFamily
	}
	if name, ok := accentNameOf(opts.Accent); ok {
		g.accentName = name
	}
	g.applyTheme()
	return g
}

// Route returns the route of the current page.
func (g *Gallery) Route() string {
	return g.history[len(g.history)-1]
}

// Brightness returns the current palette brightness.
func (g *Gallery) Brightness() theme.Brightness {
	return g.brightness
}

// Theme implements engine.Program.
func (g *Gallery) Theme() style.Catalog {
	return g.theme
}

// ThemeData returns the current theme.
func (g *Gallery) ThemeData() *theme.ThemeData {
	return g.theme
}

// Update implements engine.Program.
func (g *Gallery) Update(msg any) {
	switch msg := msg.(type) {
	case Navigate:
		g.navigate(msg.Route)
	case Back:
		if len(g.history) > 1 {
			g.history = g.history[:len(g.history)-1]
		}
	case ToggleTheme:
		if g.brightness == theme.BrightnessDark {
			g.brightness = theme.BrightnessLight
		} else {
			g.brightness = theme.BrightnessDark
		}
		g.applyTheme()
	case SetTheme:
		g.brightness = msg.Brightness
		g.accent = msg.Accent
		g.accentName = accentDefault
		if name, ok := accentNameOf(msg.Accent); ok {
			g.accentName = name
		}
		g.applyTheme()
	case widgets.NumberChanged[int]:
		g.numbers.setInt(msg.Source, msg.Value)
	case widgets.NumberChanged[float64]:
		g.numbers.setFloat(msg.Source, msg.Value)
	case widgets.NumberChanged[uint8]:
		g.numbers.setUint8(msg.Source, msg.Value)
	case widgets.PickListSelected[string]:
		g.selectOption(msg.Source, msg.Value)
	case numberSubmitted:
		g.numbers.submitted = fmt.Sprintf("%s at %d", msg.source, g.numbers.ints[msg.source])
	default:
		g.log.WithField("message", fmt.Sprintf("%T", msg)).Debug("unhandled message")
	}
}

func (g *Gallery) navigate(route string) {
	if route == HomeRoute {
		g.history = g.history[:1]
		return
	}
	if _, ok := Lookup(route); !ok {
		g.log.WithField("route", route).Warn("unknown route")
		return
	}
	if g.Route() == route {
		return
	}
	g.history = append(g.history, route)
}

func (g *Gallery) selectOption(source any, value string) {
	switch source {
	case fruitSource:
		v := value
		g.fruit = &v
	case accentSource:
		accent, ok := accents[value]
		if !ok {
			return
		}
		g.accentName = value
		g.accent = accent
		g.applyTheme()
	}
}

func (g *Gallery) applyTheme() {
	data := theme.ForBrightness(g.brightness)
	if g.accent != 0 {
		data = data.WithAccent(g.accent)
	}
	g.theme = data
}

// View implements engine.Program.
func (g *Gallery) View() core.Widget {
	route := g.Route()
	if route == HomeRoute {
		return g.scaffold("Fluent Gallery", buildHomePage(g))
	}
	page, ok := Lookup(route)
	if !ok {
		return g.scaffold("Not found", widgets.TextOf(route))
	}
	return g.scaffold(page.Title, page.Builder(g))
}
