package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// Button is a push button that publishes a message when clicked.
//
// Button resolves its colors from the theme catalog for its Class and
// current status. The label inherits the catalog text color unless the
// content sets its own.
//
// Example using struct literal:
//
//	Button{
//	    Label:    "Reset",
//	    OnPress:  ResetPressed{},
//	    Class:    style.ClassAccent,
//	    Disabled: !dirty,
//	}
//
// Example using XxxOf helper:
//
//	ButtonOf("Reset", ResetPressed{}).
//	    WithPadding(layout.EdgeInsetsSymmetric(24, 8))
//
// A press is only reported when the primary button is both pressed and
// released over the button.
type Button struct {
	// Label is the text displayed on the button. Ignored when Content is set.
	Label string
	// Content replaces the label with an arbitrary widget.
	Content core.Widget
	// OnPress is published to the shell on click. A nil message disables
	// the button.
	OnPress any
	// Disabled disables the button when true.
	Disabled bool
	// Class selects the catalog style.
	Class style.Class
	// Padding is the button padding. Defaults to symmetric(12, 6) if zero.
	Padding layout.EdgeInsets
	Width   layout.Length
	Height  layout.Length
}

// ButtonOf creates a button with the given label and press message.
//
// This is a convenience helper equivalent to:
//
//	Button{Label: label, OnPress: onPress}
func ButtonOf(label string, onPress any) Button {
	return Button{Label: label, OnPress: onPress}
}

// WithPadding returns a copy of the button with the specified padding.
func (b Button) WithPadding(padding layout.EdgeInsets) Button {
	b.Padding = padding
	return b
}

// WithClass returns a copy of the button with the specified style class.
func (b Button) WithClass(class style.Class) Button {
	b.Class = class
	return b
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

type buttonState struct {
	pressed bool
}

func (b Button) enabled() bool {
	return !b.Disabled && b.OnPress != nil
}

func (b Button) padding() layout.EdgeInsets {
	if b.Padding == (layout.EdgeInsets{}) {
		return layout.EdgeInsetsSymmetric(12, 6)
	}
	return b.Padding
}

func (b Button) content() core.Widget {
	if b.Content != nil {
		return b.Content
	}
	return Text{Content: b.Label}
}

func (b Button) Tag() core.Tag               { return core.TagOf[buttonState]() }
func (b Button) State() any                  { return &buttonState{} }
func (b Button) ChildWidgets() []core.Widget { return []core.Widget{b.content()} }
func (b Button) Sizing() core.Sizing         { return core.Sizing{Width: b.Width, Height: b.Height} }

func (b Button) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	return Container{
		Child:   b.content(),
		Padding: b.padding(),
		Width:   b.Width,
		Height:  b.Height,
	}.Layout(tree, ctx, constraints)
}

func (b Button) status(tree *core.Tree, region layout.Region, cursor input.Cursor) style.Status {
	switch {
	case !b.enabled():
		return style.StatusDisabled
	case core.StateOf[buttonState](tree).pressed:
		return style.StatusPressed
	case cursor.IsOver(region.Bounds()):
		return style.StatusHovered
	default:
		return style.StatusActive
	}
}

func (b Button) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	bounds := region.Bounds()
	if !bounds.Intersects(viewport) {
		return
	}
	s := catalogOf(ctx.Env).Button(b.Class, b.status(tree, region, cursor))
	rrect := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(s.Radius))
	if s.Background != nil {
		ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(*s.Background))
	}
	if s.BorderWidth > 0 {
		ctx.Canvas.DrawRRect(rrect, graphics.StrokePaint(s.BorderColor, s.BorderWidth))
	}
	if child, ok := region.Child(0); ok {
		b.content().Draw(tree.Child(0), ctx.WithForeground(s.Text), child, cursor, viewport)
	}
}

func (b Button) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	if !b.enabled() {
		return input.Ignored
	}
	state := core.StateOf[buttonState](tree)
	switch ev := ev.(type) {
	case input.ButtonPressed:
		if ev.Button == input.MouseButtonPrimary && cursor.IsOver(region.Bounds()) {
			state.pressed = true
			ctx.Shell.RequestRedraw()
			return input.Captured
		}
	case input.ButtonReleased:
		if ev.Button == input.MouseButtonPrimary && state.pressed {
			state.pressed = false
			ctx.Shell.RequestRedraw()
			if cursor.IsOver(region.Bounds()) {
				ctx.Shell.Publish(b.OnPress)
			}
			return input.Captured
		}
	case input.CursorLeft:
		state.pressed = false
	}
	return input.Ignored
}

func (b Button) MouseInteraction(_ *core.Tree, region layout.Region, cursor input.Cursor, _ graphics.Rect) input.Interaction {
	if b.enabled() && cursor.IsOver(region.Bounds()) {
		return input.InteractionPointer
	}
	return input.InteractionIdle
}

// Description returns the label.
func (b Button) Description() string {
	return b.Label
}
