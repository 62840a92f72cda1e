package gallery

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

// listSource identifies a pick list in PickListSelected messages.
type listSource string

const (
	fruitSource  listSource = "fruit"
	accentSource listSource = "accent"
)

var fruits = []string{"Apple", "Banana", "Cherry", "Durian", "Elderberry", "Fig", "Grape"}

func buildPickListPage(g *Gallery) core.Widget {
	picked := "Nothing picked yet"
	if g.fruit != nil {
		picked = "You picked " + *g.fruit
	}
	return widgets.ColumnOf(12,
		description(g, "Click the list or press Escape to close it without choosing."),
		widgets.StandardPickList(fruitSource, fruits, g.fruit).
			WithPlaceholder("Choose a fruit").
			WithWidth(layout.Fixed(240)),
		caption(g, picked),
	)
}
