package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// Underline draws a bottom stroke beneath a control, thickening it to the
// accent color while anything inside the control holds focus.
//
//	widgets.Underline{Child: widgets.TextInputOf("Search", m.query)}
type Underline struct {
	Child core.Widget
	Class style.Class
}

// UnderlinedNumberInput wraps a number input in an Underline.
func UnderlinedNumberInput[T numeric.Number](n *NumberInput[T]) Underline {
	return Underline{Child: n}
}

func (u Underline) ChildWidgets() []core.Widget { return []core.Widget{u.Child} }
func (u Underline) Sizing() core.Sizing         { return core.SizingOf(u.Child) }

func (u Underline) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	child := u.Child.Layout(tree.Child(0), ctx, constraints)
	return layout.WithChildren(child.Size, child)
}

func (u Underline) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	child, ok := region.Child(0)
	if !ok {
		return
	}
	u.Child.Draw(tree.Child(0), ctx, child, cursor, viewport)

	focus := &core.AnyFocused{}
	core.Operate(u.Child, tree.Child(0), child, focus)
	s := catalogOf(ctx.Env).Underline(u.Class, focus.Found)
	if s.Width <= 0 {
		return
	}
	bounds := region.Bounds()
	ctx.Canvas.DrawRect(graphics.Rect{
		Left:   bounds.Left,
		Top:    bounds.Bottom - s.Width,
		Right:  bounds.Right,
		Bottom: bounds.Bottom,
	}, graphics.FillPaint(s.Color))
}

func (u Underline) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	child, ok := region.Child(0)
	if !ok {
		return input.Ignored
	}
	return core.HandleEvent(u.Child, tree.Child(0), ev, child, cursor, ctx)
}

func (u Underline) MouseInteraction(tree *core.Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction {
	child, ok := region.Child(0)
	if !ok {
		return input.InteractionIdle
	}
	return core.MouseInteraction(u.Child, tree.Child(0), child, cursor, viewport)
}

func (u Underline) Operate(tree *core.Tree, region layout.Region, op core.Operation) {
	if child, ok := region.Child(0); ok {
		core.Operate(u.Child, tree.Child(0), child, op)
	}
}
