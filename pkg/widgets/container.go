package widgets

import (
	"math"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// Container is a convenience widget that combines painting, padding,
// sizing, and alignment of a single child.
//
// Container paints in this order:
//  1. Background color and border (when set)
//  2. Child widget, positioned by Alignment within the padded area
//
// # Sizing Behavior
//
// With Shrink lengths (the zero value) the Container fits its child plus
// padding. Fill takes all available room on that axis and Fixed uses the
// given value, both clamped to the parent constraints. MaxWidth caps the
// width regardless of policy.
//
// # Common Patterns
//
//	// Card with padding
//	Container{
//	    Color:   colors.Layer,
//	    Radius:  8,
//	    Padding: layout.EdgeInsetsAll(16),
//	    Child:   Text{Content: "Hello"},
//	}
//
//	// Glyph centered in a shrink-wrapped box
//	Container{
//	    Child:     Text{Content: " + "},
//	    Alignment: layout.AlignmentCenter,
//	}
type Container struct {
	Child   core.Widget
	Padding layout.EdgeInsets
	Width   layout.Length
	Height  layout.Length
	// MaxWidth caps the width; zero means no cap.
	MaxWidth float64
	// Alignment positions the child within the padded area. The zero value
	// centers it.
	Alignment   layout.Alignment
	Color       graphics.Color
	BorderColor graphics.Color
	BorderWidth float64
	Radius      float64
}

// WithColor returns a copy of the container with the specified background color.
func (c Container) WithColor(color graphics.Color) Container {
	c.Color = color
	return c
}

// WithPadding returns a copy of the container with the specified padding.
func (c Container) WithPadding(padding layout.EdgeInsets) Container {
	c.Padding = padding
	return c
}

// WithSize returns a copy of the container with the specified width and height.
func (c Container) WithSize(width, height layout.Length) Container {
	c.Width = width
	c.Height = height
	return c
}

// WithAlignment returns a copy of the container with the specified child alignment.
func (c Container) WithAlignment(alignment layout.Alignment) Container {
	c.Alignment = alignment
	return c
}

func (c Container) ChildWidgets() []core.Widget {
	if c.Child == nil {
		return nil
	}
	return []core.Widget{c.Child}
}

func (c Container) Sizing() core.Sizing {
	return core.Sizing{Width: c.Width, Height: c.Height}
}

func (c Container) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	limits := constraints.Width(c.Width).Height(c.Height)
	if c.MaxWidth > 0 {
		limits.MaxWidth = math.Max(limits.MinWidth, math.Min(limits.MaxWidth, c.MaxWidth))
	}
	if c.Child == nil {
		return layout.NewNode(limits.Resolve(c.Width, c.Height, graphics.Size{
			Width:  c.Padding.Horizontal(),
			Height: c.Padding.Vertical(),
		}))
	}
	inner := limits.Deflate(c.Padding).Loosen()
	child := c.Child.Layout(tree.Child(0), ctx, inner)
	intrinsic := graphics.Size{
		Width:  child.Size.Width + c.Padding.Horizontal(),
		Height: child.Size.Height + c.Padding.Vertical(),
	}
	size := limits.Resolve(c.Width, c.Height, intrinsic)
	space := graphics.Size{
		Width:  math.Max(0, size.Width-c.Padding.Horizontal()),
		Height: math.Max(0, size.Height-c.Padding.Vertical()),
	}
	child.Move(graphics.Offset{X: c.Padding.Left, Y: c.Padding.Top}).Align(c.Alignment, space)
	return layout.WithChildren(size, child)
}

func (c Container) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	bounds := region.Bounds()
	if !bounds.Intersects(viewport) {
		return
	}
	rrect := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(c.Radius))
	if c.Color != 0 {
		ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(c.Color))
	}
	if c.BorderWidth > 0 && c.BorderColor != 0 {
		ctx.Canvas.DrawRRect(rrect, graphics.StrokePaint(c.BorderColor, c.BorderWidth))
	}
	if c.Child == nil {
		return
	}
	if child, ok := region.Child(0); ok {
		c.Child.Draw(tree.Child(0), ctx, child, cursor, viewport)
	}
}

func (c Container) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	child, ok := region.Child(0)
	if c.Child == nil || !ok {
		return input.Ignored
	}
	return core.HandleEvent(c.Child, tree.Child(0), ev, child, cursor, ctx)
}

func (c Container) MouseInteraction(tree *core.Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction {
	child, ok := region.Child(0)
	if c.Child == nil || !ok {
		return input.InteractionIdle
	}
	return core.MouseInteraction(c.Child, tree.Child(0), child, cursor, viewport)
}

func (c Container) Operate(tree *core.Tree, region layout.Region, op core.Operation) {
	child, ok := region.Child(0)
	if c.Child == nil || !ok {
		return
	}
	core.Operate(c.Child, tree.Child(0), child, op)
}
