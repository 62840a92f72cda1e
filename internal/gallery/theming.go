package gallery

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

const accentDefault = "Default"

// accentNames lists the accent choices in display order.
var accentNames = []string{accentDefault, "Blue", "Purple", "Green", "Orange", "Pink"}

// accents maps accent names to colors. Zero keeps the palette accent.
var accents = map[string]graphics.Color{
	accentDefault: 0,
	"Blue":        graphics.RGB(0x00, 0x5F, 0xB8),
	"Purple":      graphics.RGB(0x87, 0x64, 0xB8),
	"Green":       graphics.RGB(0x10, 0x7C, 0x10),
	"Orange":      graphics.RGB(0xCA, 0x50, 0x10),
	"Pink":        graphics.RGB(0xE3, 0x00, 0x8C),
}

func accentNameOf(c graphics.Color) (string, bool) {
	for _, name := range accentNames {
		if accents[name] == c {
			return name, true
		}
	}
	return "", false
}

func buildThemingPage(g *Gallery) core.Widget {
	colors := g.theme.ColorScheme
	swatches := []struct {
		name  string
		color graphics.Color
	}{
		{"Accent", colors.Accent},
		{"Background", colors.Background},
		{"Layer", colors.Layer},
		{"Control fill", colors.ControlFill},
		{"Control stroke", colors.ControlStrongStroke},
		{"Text", colors.TextPrimary},
		{"Secondary text", colors.TextSecondary},
		{"Disabled text", colors.TextDisabled},
	}
	cells := make([]core.Widget, 0, len(swatches))
	for _, s := range swatches {
		cells = append(cells, swatch(g, s.name, s.color))
	}

	return widgets.ColumnOf(12,
		sectionHeader(g, "Mode"),
		widgets.RowOf(8,
			widgets.ButtonOf("Light", SetTheme{Brightness: theme.BrightnessLight, Accent: g.accent}),
			widgets.ButtonOf("Dark", SetTheme{Brightness: theme.BrightnessDark, Accent: g.accent}),
		),
		caption(g, "Current mode: "+g.brightness.String()),
		sectionHeader(g, "Accent"),
		widgets.StandardPickList(accentSource, accentNames, &g.accentName).
			WithWidth(layout.Fixed(200)),
		sectionHeader(g, "Palette"),
		widgets.RowOf(8, cells[:4]...),
		widgets.RowOf(8, cells[4:]...),
	)
}

func swatch(g *Gallery, name string, color graphics.Color) core.Widget {
	return widgets.ColumnOf(4,
		widgets.Container{
			Width:       layout.Fixed(96),
			Height:      layout.Fixed(40),
			Color:       color,
			BorderColor: g.theme.ColorScheme.ControlStroke,
			BorderWidth: 1,
			Radius:      4,
		},
		caption(g, name),
		caption(g, color.Hex()),
	)
}
