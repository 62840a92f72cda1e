package gallery

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/fonts"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

var weights = []graphics.FontWeight{
	graphics.FontWeightNormal,
	graphics.FontWeightMedium,
	graphics.FontWeightSemibold,
	graphics.FontWeightBold,
}

func buildTypographyPage(g *Gallery) core.Widget {
	ramp := g.theme.TextTheme
	samples := []struct {
		name  string
		style graphics.TextStyle
	}{
		{"Caption", ramp.Caption},
		{"Body", ramp.Body},
		{"Body strong", ramp.BodyStrong},
		{"Subtitle", ramp.Subtitle},
		{"Title", ramp.Title},
	}

	items := []core.Widget{sectionHeader(g, "Type ramp")}
	for _, s := range samples {
		items = append(items, widgets.Row{
			Spacing:            16,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			Children: []core.Widget{
				widgets.Text{
					Content:   fmt.Sprintf("%s %g/%g", s.name, s.style.FontSize, s.style.LineHeight),
					Style:     ramp.Caption.WithColor(g.theme.ColorScheme.TextSecondary),
					Width:     layout.Fixed(140),
					Alignment: layout.AlignmentCenterLeft,
				},
				widgets.Text{Content: "The quick brown fox", Style: s.style},
			},
		})
	}

	weightSamples := make([]core.Widget, 0, len(weights))
	for _, w := range weights {
		style := ramp.Body
		style.FontWeight = w
		weightSamples = append(weightSamples, widgets.Text{Content: w.String(), Style: style})
	}
	items = append(items, sectionHeader(g, "Weights"), widgets.RowOf(16, weightSamples...))

	items = append(items, sectionHeader(g, "Fonts"))
	for _, role := range fonts.Roles {
		items = append(items, caption(g, fontSummary(g, role)))
	}
	return widgets.ColumnOf(10, items...)
}

// fontSummary describes the family serving role.
func fontSummary(g *Gallery, role fonts.Role) string {
	if g.fonts != nil {
		if s, ok := g.fonts.Selection(role); ok {
			return fmt.Sprintf("%s: %s (%s, %d faces)", role, s.Family, s.Path, len(s.Faces))
		}
	}
	switch role {
	case fonts.RoleUI:
		return fmt.Sprintf("%s: %s (bundled)", role, g.typography.UIFamily)
	default:
		return fmt.Sprintf("%s: none found, drawing fallback glyphs", role)
	}
}
