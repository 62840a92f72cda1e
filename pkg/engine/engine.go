package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// Engine owns a widget tree and drives its phases: build, layout, event
// dispatch, and paint.
//
// An Engine is not safe for concurrent use. The desktop shell only touches
// it from the UI thread; tests and snapshots drive it from the calling
// goroutine.
type Engine struct {
	env       *core.Env
	clipboard input.Clipboard
	log       *logrus.Entry

	root core.Widget
	tree *core.Tree
	node *layout.Node

	size        graphics.Size
	cursor      input.Cursor
	needsLayout bool
	needsPaint  bool
}

// New creates an engine that lays out text with env and reads and writes
// clipboard. A nil clipboard disables copy and paste.
func New(env *core.Env, clipboard input.Clipboard, log *logrus.Entry) *Engine {
	if clipboard == nil {
		clipboard = input.NullClipboard{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		env:       env,
		clipboard: clipboard,
		log:       log.WithField("component", "engine"),
		cursor:    input.Unavailable(),
	}
}

// Env returns the environment shared by every phase.
func (e *Engine) Env() *core.Env {
	return e.env
}

// Build installs root as the current view. Widget state is kept for the
// parts of the tree whose state type and key still match.
func (e *Engine) Build(root core.Widget) {
	if e.tree == nil {
		e.tree = core.NewTree(root)
	} else {
		e.tree.Diff(root)
	}
	e.root = root
	e.needsLayout = true
	e.needsPaint = true
}

// Resize sets the logical surface size.
func (e *Engine) Resize(size graphics.Size) {
	if size == e.size {
		return
	}
	e.size = size
	e.needsLayout = true
	e.needsPaint = true
}

// Size returns the logical surface size.
func (e *Engine) Size() graphics.Size {
	return e.size
}

// Layout lays out the view if anything invalidated the previous layout
// and returns the root node.
func (e *Engine) Layout() *layout.Node {
	if e.root == nil {
		return nil
	}
	if e.needsLayout || e.node == nil {
		e.node = e.root.Layout(e.tree, &core.LayoutContext{Env: e.env}, layout.Loose(e.size))
		e.needsLayout = false
		e.log.WithFields(logrus.Fields{
			"width":  e.node.Size.Width,
			"height": e.node.Size.Height,
		}).Trace("layout")
	}
	return e.node
}

// Tree returns the widget state tree.
func (e *Engine) Tree() *core.Tree {
	return e.tree
}

// Root returns the current view.
func (e *Engine) Root() core.Widget {
	return e.root
}

// Cursor returns the last known pointer position.
func (e *Engine) Cursor() input.Cursor {
	return e.cursor
}

// NeedsPaint reports whether the surface should be redrawn.
func (e *Engine) NeedsPaint() bool {
	return e.needsPaint || e.needsLayout
}

// Dispatch delivers ev to the view and returns the resulting status and the
// messages widgets published, in publish order.
//
// Tab and Shift+Tab that no widget captures move focus between focusable
// widgets.
func (e *Engine) Dispatch(ev input.Event) (input.Status, []any) {
	node := e.Layout()
	if node == nil {
		return input.Ignored, nil
	}
	switch ev := ev.(type) {
	case input.CursorMoved:
		e.cursor = input.At(ev.Position)
	case input.CursorLeft:
		e.cursor = input.Unavailable()
	}

	shell := &core.Shell{}
	ctx := &core.EventContext{Env: e.env, Shell: shell, Clipboard: e.clipboard}
	status := core.HandleEvent(e.root, e.tree, ev, layout.NewRegion(node), e.cursor, ctx)

	if key, ok := ev.(input.KeyPressed); ok && status == input.Ignored && key.Key == input.KeyTab {
		if key.Modifiers.Shift() {
			e.FocusPrevious()
		} else {
			e.FocusNext()
		}
		status = input.Captured
	}

	if shell.LayoutInvalidated() {
		e.needsLayout = true
	}
	if shell.NeedsRedraw() || status == input.Captured {
		e.needsPaint = true
	}
	msgs := shell.Drain()
	if len(msgs) > 0 {
		e.log.WithField("messages", len(msgs)).Debug("dispatch published messages")
	}
	return status, msgs
}

// MouseInteraction returns the pointer shape the view requests at the
// current cursor position.
func (e *Engine) MouseInteraction() input.Interaction {
	node := e.Layout()
	if node == nil {
		return input.InteractionIdle
	}
	return core.MouseInteraction(e.root, e.tree, layout.NewRegion(node), e.cursor, e.viewport())
}

// Paint lays out if needed and draws the view onto canvas over the
// catalog background.
func (e *Engine) Paint(canvas graphics.Canvas) {
	node := e.Layout()
	if e.env != nil && e.env.Catalog != nil {
		canvas.Clear(e.env.Catalog.Background())
	}
	if node == nil {
		return
	}
	ctx := &core.PaintContext{Env: e.env, Canvas: canvas}
	if e.env != nil && e.env.Catalog != nil {
		ctx.Foreground = e.env.Catalog.TextColor()
	}
	e.root.Draw(e.tree, ctx, layout.NewRegion(node), e.cursor, e.viewport())
	e.needsPaint = false
}

// Operate runs op over every focusable widget in the view.
func (e *Engine) Operate(op core.Operation) {
	node := e.Layout()
	if node == nil {
		return
	}
	core.Operate(e.root, e.tree, layout.NewRegion(node), op)
	e.needsPaint = true
}

func (e *Engine) viewport() graphics.Rect {
	return graphics.RectFromOffsetSize(graphics.Offset{}, e.size)
}
