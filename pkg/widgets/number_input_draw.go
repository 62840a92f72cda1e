package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/icons"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// stepButtonRadius is the corner radius of the step button quads.
const stepButtonRadius = 3

func (n *NumberInput[T]) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	parts := regionsOf(region)
	n.content().Draw(tree.Child(0), ctx, parts.content, cursor, viewport)
	if n.ignoreButtons {
		return
	}
	mods := core.StateOf[ModifierState](tree)
	catalog := catalogOf(ctx.Env)

	n.drawButton(ctx, catalog, parts.decrease, viewport, icons.ChevronDown,
		n.buttonStatus(n.domain.DecreaseDisabled(n.value), mods.DecreasePressed))
	n.drawButton(ctx, catalog, parts.increase, viewport, icons.ChevronUp,
		n.buttonStatus(n.domain.IncreaseDisabled(n.value), mods.IncreasePressed))
}

func (n *NumberInput[T]) buttonStatus(disabled, pressed bool) style.Status {
	switch {
	case disabled:
		return style.StatusDisabled
	case pressed:
		return style.StatusPressed
	default:
		return style.StatusActive
	}
}

func (n *NumberInput[T]) buttonStyle(catalog style.Catalog, status style.Status) style.NumberInputStyle {
	if n.styleFunc != nil {
		return n.styleFunc(catalog, status)
	}
	return catalog.NumberInput(n.class, status)
}

func (n *NumberInput[T]) drawButton(ctx *core.PaintContext, catalog style.Catalog, button layout.Region, viewport graphics.Rect, icon icons.Icon, status style.Status) {
	s := n.buttonStyle(catalog, status)
	bounds := button.Bounds()
	if bounds.Intersects(viewport) {
		background := graphics.ColorTransparent
		if s.ButtonBackground != nil {
			background = *s.ButtonBackground
		}
		rrect := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(stepButtonRadius))
		ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(background))
	}
	drawIcon(ctx, icon, n.iconSize(), s.IconColor, bounds)
}
