package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// Space is an empty box that takes room in a layout.
//
//	widgets.Space{Width: layout.Fill} // pushes siblings apart in a Row
type Space struct {
	Width  layout.Length
	Height layout.Length
}

func (s Space) Sizing() core.Sizing {
	return core.Sizing{Width: s.Width, Height: s.Height}
}

func (s Space) Layout(_ *core.Tree, _ *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	return layout.NewNode(constraints.Width(s.Width).Height(s.Height).Resolve(s.Width, s.Height, graphics.Size{}))
}

func (Space) Draw(*core.Tree, *core.PaintContext, layout.Region, input.Cursor, graphics.Rect) {}
