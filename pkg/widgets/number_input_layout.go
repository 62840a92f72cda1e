package widgets

import (
	"math"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/errors"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

func (n *NumberInput[T]) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	limits := constraints.Width(n.width)
	content := n.content().Layout(tree.Child(0), ctx, limits)

	aux := n.modifiers().Layout(tree.Child(1), ctx, layout.Loose(content.Size))
	intrinsic := graphics.Size{
		Width:  content.Size.Width - 1,
		Height: math.Max(content.Size.Height, aux.Size.Height),
	}
	aux.Align(layout.AlignmentCenterRight, intrinsic)

	size := limits.Resolve(n.width, layout.Shrink, intrinsic)
	return layout.WithChildren(size, content, aux)
}

// numberRegions are the placed parts of a laid out NumberInput.
type numberRegions struct {
	content  layout.Region
	increase layout.Region
	decrease layout.Region
}

func regionsOf(region layout.Region) numberRegions {
	children := region.Children()
	content := errors.MustChild(children, 0, "NumberInput", "text field")
	buttons := errors.MustChild(children, 1, "NumberInput", "step buttons").Children()
	return numberRegions{
		content:  content,
		increase: errors.MustChild(buttons, 0, "NumberInput", "increase button"),
		decrease: errors.MustChild(buttons, 1, "NumberInput", "decrease button"),
	}
}
