package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/icons"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// PickListSelected is published when an option of a PickList is chosen.
type PickListSelected[T comparable] struct {
	Source any
	Value  T
}

// PickList displays the selected option and opens a list of options below
// itself when clicked. The open list is laid out inline, so it pushes
// following siblings down.
//
// Example:
//
//	widgets.StandardPickList("theme", []string{"Light", "Dark"}, &m.mode).
//	    WithPlaceholder("Choose a theme")
//
// Clicking an option publishes PickListSelected and closes the list.
// Clicking elsewhere or pressing Escape closes it without a selection.
type PickList[T comparable] struct {
	// Source identifies the list in PickListSelected messages.
	Source  any
	Options []T
	// Selected is the current selection; nil shows the placeholder.
	Selected    *T
	Placeholder string
	// Label renders an option. Defaults to fmt.Sprint.
	Label      func(T) string
	TextSize   float64
	LineHeight float64
	// Font is the font family; empty uses the UI family.
	Font    string
	Padding layout.EdgeInsets
	Width   layout.Length
	// Handle is the glyph at the trailing edge. Defaults to ChevronDown.
	Handle     icons.Icon
	HandleSize float64
	Class      style.Class
}

// StandardPickList creates a pick list with the Fluent configuration: the UI
// font at 14 over 20 and a 10px ChevronDown handle.
func StandardPickList[T comparable](source any, options []T, selected *T) PickList[T] {
	return PickList[T]{
		Source:     source,
		Options:    options,
		Selected:   selected,
		TextSize:   defaultTextSize,
		LineHeight: defaultLineHeight,
		Padding:    layout.EdgeInsetsSymmetric(10, 5),
		Handle:     icons.ChevronDown,
		HandleSize: 10,
	}
}

// WithPlaceholder returns a copy of the list with the given placeholder.
func (p PickList[T]) WithPlaceholder(placeholder string) PickList[T] {
	p.Placeholder = placeholder
	return p
}

// WithWidth returns a copy of the list with the given width policy.
func (p PickList[T]) WithWidth(width layout.Length) PickList[T] {
	p.Width = width
	return p
}

// WithLabel returns a copy of the list with the given option renderer.
func (p PickList[T]) WithLabel(label func(T) string) PickList[T] {
	p.Label = label
	return p
}

type pickListState struct {
	open    bool
	hovered int
}

func (p PickList[T]) Tag() core.Tag { return core.TagOf[pickListState]() }
func (p PickList[T]) State() any    { return &pickListState{hovered: -1} }
func (p PickList[T]) Key() any      { return p.Source }

func (p PickList[T]) Sizing() core.Sizing {
	return core.Sizing{Width: p.Width, Height: layout.Shrink}
}

func (p PickList[T]) label(v T) string {
	if p.Label != nil {
		return p.Label(v)
	}
	return fmt.Sprint(v)
}

func (p PickList[T]) textStyle(color graphics.Color) graphics.TextStyle {
	return graphics.TextStyle{
		Color:      color,
		FontFamily: p.Font,
		FontSize:   orDefault(p.TextSize, defaultTextSize),
		LineHeight: orDefault(p.LineHeight, defaultLineHeight),
	}
}

func (p PickList[T]) handle() icons.Icon {
	if p.Handle == (icons.Icon{}) {
		return icons.ChevronDown
	}
	return p.Handle
}

func (p PickList[T]) rowHeight() float64 {
	return orDefault(p.LineHeight, defaultLineHeight) + p.Padding.Vertical()
}

func (p PickList[T]) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	state := core.StateOf[pickListState](tree)
	labelWidth := ctx.LayoutText(p.Placeholder, p.textStyle(0)).Size.Width
	for _, option := range p.Options {
		labelWidth = math.Max(labelWidth, ctx.LayoutText(p.label(option), p.textStyle(0)).Size.Width)
	}
	handleSize := orDefault(p.HandleSize, orDefault(p.TextSize, defaultTextSize))
	rowHeight := p.rowHeight()

	intrinsic := graphics.Size{
		Width:  labelWidth + p.Padding.Horizontal() + handleSize + p.Padding.Left,
		Height: rowHeight,
	}
	header := layout.NewNode(constraints.Width(p.Width).Resolve(p.Width, layout.Shrink, intrinsic))
	width := header.Size.Width
	if !state.open || len(p.Options) == 0 {
		return layout.WithChildren(header.Size, header)
	}

	rows := make([]*layout.Node, len(p.Options))
	for i := range p.Options {
		rows[i] = layout.NewNode(graphics.Size{Width: width, Height: rowHeight}).
			Move(graphics.Offset{Y: float64(i) * rowHeight})
	}
	menu := layout.WithChildren(graphics.Size{Width: width, Height: rowHeight * float64(len(rows))}, rows...).
		Move(graphics.Offset{Y: header.Size.Height})
	return layout.WithChildren(graphics.Size{Width: width, Height: header.Size.Height + menu.Size.Height}, header, menu)
}

func (p PickList[T]) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	if !region.Bounds().Intersects(viewport) {
		return
	}
	state := core.StateOf[pickListState](tree)
	catalog := catalogOf(ctx.Env)
	header, ok := region.Child(0)
	if !ok {
		return
	}

	status := style.StatusActive
	switch {
	case state.open:
		status = style.StatusPressed
	case cursor.IsOver(header.Bounds()):
		status = style.StatusHovered
	}
	s := catalog.PickList(p.Class, status)
	bounds := header.Bounds()
	rrect := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(s.Radius))
	ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(s.Background))
	if s.BorderWidth > 0 {
		ctx.Canvas.DrawRRect(rrect, graphics.StrokePaint(s.BorderColor, s.BorderWidth))
	}

	handleSize := orDefault(p.HandleSize, orDefault(p.TextSize, defaultTextSize))
	text, color := p.Placeholder, s.Placeholder
	if p.Selected != nil {
		text, color = p.label(*p.Selected), s.Text
	}
	p.drawLabel(ctx, text, color, bounds.Deflate(p.Padding.Left, p.Padding.Top, p.Padding.Right+handleSize+p.Padding.Left, p.Padding.Bottom))
	drawIcon(ctx, p.handle(), handleSize, s.Handle, graphics.Rect{
		Left:   bounds.Right - p.Padding.Right - handleSize,
		Top:    bounds.Top,
		Right:  bounds.Right - p.Padding.Right,
		Bottom: bounds.Bottom,
	})

	menu, ok := region.Child(1)
	if !ok {
		return
	}
	m := catalog.Menu(p.Class)
	menuRect := graphics.RRectFromRectAndRadius(menu.Bounds(), graphics.CircularRadius(m.Radius))
	ctx.Canvas.DrawRRect(menuRect, graphics.FillPaint(m.Background))
	ctx.Canvas.DrawRRect(menuRect, graphics.StrokePaint(m.BorderColor, 1))
	for i, row := range menu.Children() {
		if i >= len(p.Options) {
			break
		}
		rowBounds := row.Bounds()
		color := m.Text
		if i == state.hovered || (p.Selected != nil && *p.Selected == p.Options[i] && state.hovered < 0) {
			ctx.Canvas.DrawRRect(graphics.RRectFromRectAndRadius(rowBounds, graphics.CircularRadius(m.Radius)), graphics.FillPaint(m.SelectedBackground))
			color = m.SelectedText
		}
		p.drawLabel(ctx, p.label(p.Options[i]), color, rowBounds.Deflate(p.Padding.Left, p.Padding.Top, p.Padding.Right, p.Padding.Bottom))
	}
}

func (p PickList[T]) drawLabel(ctx *core.PaintContext, text string, color graphics.Color, bounds graphics.Rect) {
	if text == "" {
		return
	}
	laid := ctx.LayoutText(text, p.textStyle(color))
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(bounds)
	ctx.Canvas.DrawText(laid, graphics.Offset{X: bounds.Left, Y: bounds.Top + (bounds.Height()-laid.Size.Height)/2})
	ctx.Canvas.Restore()
}

// rowAt returns the index of the option row under position, or -1.
func rowAt(region layout.Region, position graphics.Offset) int {
	menu, ok := region.Child(1)
	if !ok {
		return -1
	}
	for i, row := range menu.Children() {
		if row.Bounds().Contains(position) {
			return i
		}
	}
	return -1
}

func (p PickList[T]) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	state := core.StateOf[pickListState](tree)
	header, ok := region.Child(0)
	if !ok {
		return input.Ignored
	}
	switch ev := ev.(type) {
	case input.ButtonPressed:
		if ev.Button != input.MouseButtonPrimary {
			return input.Ignored
		}
		if cursor.IsOver(header.Bounds()) {
			state.open = !state.open && len(p.Options) > 0
			state.hovered = -1
			ctx.Shell.InvalidateLayout()
			return input.Captured
		}
		if !state.open {
			return input.Ignored
		}
		state.open = false
		state.hovered = -1
		ctx.Shell.InvalidateLayout()
		if cursor.Available {
			if i := rowAt(region, cursor.Position); i >= 0 && i < len(p.Options) {
				ctx.Shell.Publish(PickListSelected[T]{Source: p.Source, Value: p.Options[i]})
				return input.Captured
			}
		}
	case input.CursorMoved:
		if state.open {
			if i := rowAt(region, ev.Position); i != state.hovered {
				state.hovered = i
				ctx.Shell.RequestRedraw()
			}
		}
	case input.KeyPressed:
		if state.open && ev.Key == input.KeyEscape {
			state.open = false
			state.hovered = -1
			ctx.Shell.InvalidateLayout()
			return input.Captured
		}
	}
	return input.Ignored
}

func (p PickList[T]) MouseInteraction(_ *core.Tree, region layout.Region, cursor input.Cursor, _ graphics.Rect) input.Interaction {
	if cursor.IsOver(region.Bounds()) && len(p.Options) > 0 {
		return input.InteractionPointer
	}
	return input.InteractionIdle
}
