package gallery

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/icons"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

const iconColumns = 5

func buildIconsPage(g *Gallery) core.Widget {
	all := icons.All()
	rows := make([]core.Widget, 0, len(all)/iconColumns+2)

	source := "Drawn with " + g.typography.IconFamily
	if g.typography.IconFamily == "" {
		source = "No icon font found; showing fallbacks"
	}
	rows = append(rows, description(g, source))

	for start := 0; start < len(all); start += iconColumns {
		end := min(start+iconColumns, len(all))
		cells := make([]core.Widget, 0, iconColumns)
		for _, icon := range all[start:end] {
			cells = append(cells, iconCell(g, icon))
		}
		rows = append(rows, widgets.RowOf(8, cells...))
	}
	return widgets.ColumnOf(8, rows...)
}

func iconCell(g *Gallery, icon icons.Icon) core.Widget {
	return widgets.Container{
		Width:       layout.Fixed(136),
		Padding:     layout.EdgeInsetsSymmetric(8, 6),
		Color:       g.theme.ColorScheme.Layer,
		BorderColor: g.theme.ColorScheme.ControlStroke,
		BorderWidth: 1,
		Radius:      4,
		Alignment:   layout.AlignmentCenterLeft,
		Child: widgets.RowOf(8,
			iconText(g, icon, 20),
			widgets.ColumnOf(2,
				widgets.Text{Content: icon.Name, Style: g.theme.TextTheme.Body},
				caption(g, fmt.Sprintf("U+%04X", icon.Codepoint)),
			),
		),
	}
}
