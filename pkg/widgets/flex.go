package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]) when there is free space.
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	MainAxisAlignmentSpaceBetween
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis
// (vertical for [Row], horizontal for [Column]).
type CrossAxisAlignment int

const (
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentEnd
	CrossAxisAlignmentCenter
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Row lays out children horizontally.
//
// Children whose width policy is Fill share the space left after the
// other children are measured. Spacing is inserted between neighbours.
//
//	widgets.Row{
//	    Spacing:            8,
//	    CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
//	    Children:           []core.Widget{label, widgets.Space{Width: layout.Fill}, input},
//	}
type Row struct {
	Children           []core.Widget
	Spacing            float64
	Padding            layout.EdgeInsets
	Width              layout.Length
	Height             layout.Length
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
}

// RowOf creates a Row with the given spacing and children.
func RowOf(spacing float64, children ...core.Widget) Row {
	return Row{Spacing: spacing, Children: children}
}

// Column lays out children vertically. See [Row] for sizing rules.
//
//	widgets.ColumnOf(4, title, body)
type Column struct {
	Children           []core.Widget
	Spacing            float64
	Padding            layout.EdgeInsets
	Width              layout.Length
	Height             layout.Length
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
}

// ColumnOf creates a Column with the given spacing and children.
func ColumnOf(spacing float64, children ...core.Widget) Column {
	return Column{Spacing: spacing, Children: children}
}

func (r Row) flex() flex {
	return flex{
		axis:     AxisHorizontal,
		children: r.Children,
		spacing:  r.Spacing,
		padding:  r.Padding,
		width:    r.Width,
		height:   r.Height,
		main:     r.MainAxisAlignment,
		cross:    r.CrossAxisAlignment,
	}
}

func (c Column) flex() flex {
	return flex{
		axis:     AxisVertical,
		children: c.Children,
		spacing:  c.Spacing,
		padding:  c.Padding,
		width:    c.Width,
		height:   c.Height,
		main:     c.MainAxisAlignment,
		cross:    c.CrossAxisAlignment,
	}
}

func (r Row) ChildWidgets() []core.Widget { return r.Children }
func (r Row) Sizing() core.Sizing         { return core.Sizing{Width: r.Width, Height: r.Height} }

func (r Row) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	return r.flex().layout(tree, ctx, constraints)
}

func (r Row) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	r.flex().draw(tree, ctx, region, cursor, viewport)
}

func (r Row) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	return r.flex().onEvent(tree, ev, region, cursor, ctx)
}

func (r Row) MouseInteraction(tree *core.Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction {
	return r.flex().mouseInteraction(tree, region, cursor, viewport)
}

func (r Row) Operate(tree *core.Tree, region layout.Region, op core.Operation) {
	r.flex().operate(tree, region, op)
}

func (c Column) ChildWidgets() []core.Widget { return c.Children }
func (c Column) Sizing() core.Sizing         { return core.Sizing{Width: c.Width, Height: c.Height} }

func (c Column) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	return c.flex().layout(tree, ctx, constraints)
}

func (c Column) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	c.flex().draw(tree, ctx, region, cursor, viewport)
}

func (c Column) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	return c.flex().onEvent(tree, ev, region, cursor, ctx)
}

func (c Column) MouseInteraction(tree *core.Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction {
	return c.flex().mouseInteraction(tree, region, cursor, viewport)
}

func (c Column) Operate(tree *core.Tree, region layout.Region, op core.Operation) {
	c.flex().operate(tree, region, op)
}

// flex is the shared implementation of Row and Column. Sizes are handled
// as (main, cross) pairs and mapped back to width and height at the end.
type flex struct {
	axis     Axis
	children []core.Widget
	spacing  float64
	padding  layout.EdgeInsets
	width    layout.Length
	height   layout.Length
	main     MainAxisAlignment
	cross    CrossAxisAlignment
}

func (f flex) pack(main, cross float64) graphics.Size {
	if f.axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f flex) unpack(size graphics.Size) (main, cross float64) {
	if f.axis == AxisHorizontal {
		return size.Width, size.Height
	}
	return size.Height, size.Width
}

func (f flex) mainLength(s core.Sizing) layout.Length {
	if f.axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func (f flex) layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	limits := constraints.Width(f.width).Height(f.height)
	inner := limits.Deflate(f.padding).Loosen()
	maxMain, maxCross := f.unpack(inner.Max())

	nodes := make([]*layout.Node, len(f.children))
	gaps := f.spacing * float64(max(len(f.children)-1, 0))
	used := gaps
	var crossSize float64
	var fills []int

	for i, child := range f.children {
		if f.mainLength(core.SizingOf(child)).Kind == layout.LengthFill && !math.IsInf(maxMain, 1) {
			fills = append(fills, i)
			continue
		}
		room := math.Max(0, maxMain-used)
		nodes[i] = child.Layout(tree.Child(i), ctx, layout.Loose(f.pack(room, maxCross)))
		m, c := f.unpack(nodes[i].Size)
		used += m
		crossSize = math.Max(crossSize, c)
	}
	if len(fills) > 0 {
		share := math.Max(0, maxMain-used) / float64(len(fills))
		for _, i := range fills {
			var childLimits layout.Constraints
			if f.axis == AxisHorizontal {
				childLimits = layout.Constraints{MinWidth: share, MaxWidth: share, MaxHeight: maxCross}
			} else {
				childLimits = layout.Constraints{MinHeight: share, MaxHeight: share, MaxWidth: maxCross}
			}
			nodes[i] = f.children[i].Layout(tree.Child(i), ctx, childLimits)
			m, c := f.unpack(nodes[i].Size)
			used += m
			crossSize = math.Max(crossSize, c)
		}
	}

	intrinsic := f.pack(used, crossSize)
	intrinsic.Width += f.padding.Horizontal()
	intrinsic.Height += f.padding.Vertical()
	size := limits.Resolve(f.width, f.height, intrinsic)
	contentMain, contentCross := f.unpack(graphics.Size{
		Width:  math.Max(0, size.Width-f.padding.Horizontal()),
		Height: math.Max(0, size.Height-f.padding.Vertical()),
	})

	free := math.Max(0, contentMain-used)
	pos, gap := 0.0, f.spacing
	switch f.main {
	case MainAxisAlignmentEnd:
		pos = free
	case MainAxisAlignmentCenter:
		pos = free / 2
	case MainAxisAlignmentSpaceBetween:
		if len(nodes) > 1 {
			gap += free / float64(len(nodes)-1)
		}
	}
	for _, node := range nodes {
		m, c := f.unpack(node.Size)
		var at float64
		switch f.cross {
		case CrossAxisAlignmentEnd:
			at = contentCross - c
		case CrossAxisAlignmentCenter:
			at = (contentCross - c) / 2
		}
		offset := f.pack(pos, at)
		node.Move(graphics.Offset{X: offset.Width + f.padding.Left, Y: offset.Height + f.padding.Top})
		pos += m + gap
	}
	return layout.WithChildren(size, nodes...)
}

func (f flex) draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	for i, child := range region.Children() {
		if i >= len(f.children) || !child.Bounds().Intersects(viewport) {
			continue
		}
		f.children[i].Draw(tree.Child(i), ctx, child, cursor, viewport)
	}
}

func (f flex) onEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	status := input.Ignored
	for i, child := range region.Children() {
		if i >= len(f.children) {
			break
		}
		status = status.Merge(core.HandleEvent(f.children[i], tree.Child(i), ev, child, cursor, ctx))
	}
	return status
}

func (f flex) mouseInteraction(tree *core.Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction {
	for i, child := range region.Children() {
		if i >= len(f.children) {
			break
		}
		if it := core.MouseInteraction(f.children[i], tree.Child(i), child, cursor, viewport); it != input.InteractionIdle {
			return it
		}
	}
	return input.InteractionIdle
}

func (f flex) operate(tree *core.Tree, region layout.Region, op core.Operation) {
	for i, child := range region.Children() {
		if i >= len(f.children) {
			break
		}
		core.Operate(f.children[i], tree.Child(i), child, op)
	}
}
