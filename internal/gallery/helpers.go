package gallery

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/icons"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/style"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

// scaffold places the page title, a back button below the home page and the
// theme toggle above body.
func (g *Gallery) scaffold(title string, body core.Widget) core.Widget {
	toggle := "Dark mode"
	if g.brightness == theme.BrightnessDark {
		toggle = "Light mode"
	}

	var header []core.Widget
	if len(g.history) > 1 {
		header = append(header, widgets.ButtonOf("Back", Back{}).WithClass(style.ClassSubtle))
	}
	header = append(header,
		widgets.Text{Content: title, Style: g.theme.TextTheme.Title},
		widgets.Space{Width: layout.Fill},
		widgets.ButtonOf(toggle, ToggleTheme{}),
	)

	return widgets.Container{
		Width:     layout.Fill,
		Height:    layout.Fill,
		Padding:   layout.EdgeInsetsAll(24),
		Alignment: layout.AlignmentTopLeft,
		Child: widgets.Column{
			Spacing: 24,
			Width:   layout.Fill,
			Children: []core.Widget{
				widgets.Row{
					Spacing:            12,
					Width:              layout.Fill,
					CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
					Children:           header,
				},
				body,
			},
		},
	}
}

func sectionHeader(g *Gallery, text string) core.Widget {
	return widgets.Text{Content: text, Style: g.theme.TextTheme.Subtitle}
}

func description(g *Gallery, text string) core.Widget {
	return widgets.Text{Content: text, Style: g.theme.TextTheme.Body.WithColor(g.theme.ColorScheme.TextSecondary)}
}

func caption(g *Gallery, text string) core.Widget {
	return widgets.Text{Content: text, Style: g.theme.TextTheme.Caption.WithColor(g.theme.ColorScheme.TextSecondary)}
}

// iconText draws icon with the icon family, or its fallback in the UI font
// when no icon font was found.
func iconText(g *Gallery, icon icons.Icon, size float64) widgets.Text {
	haveIconFont := g.typography.IconFamily != ""
	s := graphics.TextStyle{FontSize: size, Color: g.theme.ColorScheme.Accent}
	if haveIconFont {
		s.FontFamily = g.typography.IconFamily
	}
	return widgets.Text{
		Content: icon.Text(haveIconFont),
		Style:   s,
		Width:   layout.Fixed(size + 8),
	}
}
