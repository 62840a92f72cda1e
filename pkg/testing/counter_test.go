package testing

import (
	"strconv"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/style"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

type incremented struct{}

// counter is a minimal program: a label showing the count and a button
// that increments it.
type counter struct {
	count int
}

func (c *counter) Update(msg any) {
	if _, ok := msg.(incremented); ok {
		c.count++
	}
}

func (c *counter) View() core.Widget {
	return widgets.ColumnOf(8,
		widgets.TextOf(strconv.Itoa(c.count)),
		widgets.ButtonOf("Increment", incremented{}),
	)
}

func (c *counter) Theme() style.Catalog {
	return theme.DefaultLightTheme()
}
