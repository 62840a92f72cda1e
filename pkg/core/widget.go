package core

import (
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// Widget is an immutable description of part of the UI.
type Widget interface {
	// Layout computes the widget's node under constraints.
	Layout(tree *Tree, ctx *LayoutContext, constraints layout.Constraints) *layout.Node

	// Draw paints the widget into region. Viewport is the visible area.
	Draw(tree *Tree, ctx *PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect)
}

// Stateful is implemented by widgets that keep state across rebuilds.
type Stateful interface {
	// Tag identifies the state type.
	Tag() Tag
	// State returns a fresh state value, always a pointer.
	State() any
}

// Parent is implemented by widgets with children.
type Parent interface {
	ChildWidgets() []Widget
}

// Differ is implemented by widgets that reconcile their tree node themselves.
// Widgets without it reconcile their ChildWidgets by key and position.
type Differ interface {
	Diff(tree *Tree)
}

// Keyed is implemented by widgets with a stable identity among siblings.
// Keys must be comparable; a key such as a slice or map is ignored.
type Keyed interface {
	Key() any
}

// EventHandler is implemented by widgets that react to input.
type EventHandler interface {
	OnEvent(tree *Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *EventContext) input.Status
}

// Interactive is implemented by widgets that request a pointer shape.
type Interactive interface {
	MouseInteraction(tree *Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction
}

// Operable is implemented by widgets that take part in operations.
type Operable interface {
	Operate(tree *Tree, region layout.Region, op Operation)
}

// Sized is implemented by widgets that report their length policies, which
// rows and columns use to distribute space.
type Sized interface {
	Sizing() Sizing
}

// Sizing is a pair of length policies.
type Sizing struct {
	Width  layout.Length
	Height layout.Length
}

// SizingOf returns the widget's sizing, Shrink on both axes by default.
func SizingOf(w Widget) Sizing {
	if s, ok := w.(Sized); ok {
		return s.Sizing()
	}
	return Sizing{Width: layout.Shrink, Height: layout.Shrink}
}

// HandleEvent dispatches ev to w if it handles events.
func HandleEvent(w Widget, tree *Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *EventContext) input.Status {
	if h, ok := w.(EventHandler); ok {
		return h.OnEvent(tree, ev, region, cursor, ctx)
	}
	return input.Ignored
}

// MouseInteraction asks w for its pointer shape.
func MouseInteraction(w Widget, tree *Tree, region layout.Region, cursor input.Cursor, viewport graphics.Rect) input.Interaction {
	if i, ok := w.(Interactive); ok {
		return i.MouseInteraction(tree, region, cursor, viewport)
	}
	return input.InteractionIdle
}

// Operate runs op over w if it takes part in operations.
func Operate(w Widget, tree *Tree, region layout.Region, op Operation) {
	if o, ok := w.(Operable); ok {
		o.Operate(tree, region, op)
	}
}

// Described is implemented by widgets that expose a short text label to
// inspection tools and test finders.
type Described interface {
	Description() string
}
