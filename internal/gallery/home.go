package gallery

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

// buildHomePage lists every registered page, grouped by category.
func buildHomePage(g *Gallery) core.Widget {
	var inputs, design []Page
	for _, p := range pages {
		switch p.Category {
		case CategoryInputs:
			inputs = append(inputs, p)
		case CategoryDesign:
			design = append(design, p)
		}
	}

	items := []core.Widget{
		description(g, "Fluent controls drawn by a small retained widget toolkit."),
		widgets.VSpace(4),
		sectionHeader(g, "Inputs"),
	}
	for _, p := range inputs {
		items = append(items, navButton(g, p))
	}
	items = append(items, widgets.VSpace(4), sectionHeader(g, "Design"))
	for _, p := range design {
		items = append(items, navButton(g, p))
	}
	return widgets.ColumnOf(12, items...)
}

func navButton(g *Gallery, p Page) core.Widget {
	return widgets.Row{
		Spacing:            12,
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Children: []core.Widget{
			iconText(g, p.Icon, 16),
			widgets.Button{Label: p.Title, OnPress: Navigate{Route: p.Route}, Width: layout.Fixed(160)},
			description(g, p.Subtitle),
		},
	}
}
