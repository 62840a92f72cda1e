package widgets

import (
	"strconv"
	"strings"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
)

// textBackspace is the control character some platforms send with
// Backspace.
const textBackspace = "\b"

func (n *NumberInput[T]) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	field := core.StateOf[TextInputState](tree.Child(0))
	if n.domain.Inert() {
		// A rebuild can make a focused input inert.
		if field.IsFocused() {
			field.Unfocus()
			ctx.Shell.RequestRedraw()
		}
		return input.Ignored
	}
	parts := regionsOf(region)
	mods := core.StateOf[ModifierState](tree)

	switch ev := ev.(type) {
	case input.KeyPressed, input.KeyReleased, input.ModifiersChanged:
		if !field.IsFocused() {
			return input.Ignored
		}
		return n.onKeyboard(tree, ev, parts, cursor, ctx, field)

	case input.WheelScrolled:
		if n.ignoreScroll || !cursor.IsOver(region.Bounds()) {
			break
		}
		if ev.Delta.Y >= 0 {
			n.increase(field, ctx)
		} else {
			n.decrease(field, ctx)
		}
		return input.Captured

	case input.ButtonPressed:
		if n.ignoreButtons || ev.Button != input.MouseButtonPrimary {
			break
		}
		switch {
		case cursor.IsOver(parts.increase.Bounds()):
			mods.IncreasePressed = true
			n.increase(field, ctx)
			return input.Captured
		case cursor.IsOver(parts.decrease.Bounds()):
			mods.DecreasePressed = true
			n.decrease(field, ctx)
			return input.Captured
		}

	case input.ButtonReleased:
		if ev.Button != input.MouseButtonPrimary {
			break
		}
		if mods.IncreasePressed || mods.DecreasePressed {
			*mods = ModifierState{}
			ctx.Shell.RequestRedraw()
		}
		// The field always sees the release so a text drag ends.
		status := n.forward(tree, ev, parts, cursor, ctx)
		if !n.ignoreButtons && n.overButton(parts, cursor) {
			return input.Captured
		}
		return status
	}
	return n.forward(tree, ev, parts, cursor, ctx)
}

func (n *NumberInput[T]) overButton(parts numberRegions, cursor input.Cursor) bool {
	return cursor.IsOver(parts.increase.Bounds()) || cursor.IsOver(parts.decrease.Bounds())
}

func (n *NumberInput[T]) forward(tree *core.Tree, ev input.Event, parts numberRegions, cursor input.Cursor, ctx *core.EventContext) input.Status {
	return n.content().OnEvent(tree.Child(0), ev, parts.content, cursor, ctx)
}

func (n *NumberInput[T]) onKeyboard(tree *core.Tree, ev input.Event, parts numberRegions, cursor input.Cursor, ctx *core.EventContext, field *TextInputState) input.Status {
	key, ok := ev.(input.KeyPressed)
	if !ok {
		if _, released := ev.(input.KeyReleased); released {
			return input.Ignored
		}
		return n.forward(tree, ev, parts, cursor, ctx)
	}

	switch {
	case key.Text == input.TextSelectAll || key.Text == input.TextCopy:
		return n.forward(tree, ev, parts, cursor, ctx)
	case key.Key == input.KeyBackspace || key.Text == textBackspace:
		return n.backspace(field, ctx)
	case key.Key == input.KeyDelete:
		return n.deleteForward(field, ctx)
	case key.Key == input.KeyArrowUp:
		n.increase(field, ctx)
		return input.Captured
	case key.Key == input.KeyArrowDown:
		n.decrease(field, ctx)
		return input.Captured
	case key.Key == input.KeyArrowLeft, key.Key == input.KeyArrowRight,
		key.Key == input.KeyHome, key.Key == input.KeyEnd, key.Key == input.KeyEnter:
		return n.forward(tree, ev, parts, cursor, ctx)
	case key.Text != "":
		return n.insert(key.Text, field, ctx)
	default:
		return input.Ignored
	}
}

// insert validates typed or pasted text against the domain.
func (n *NumberInput[T]) insert(text string, field *TextInputState, ctx *core.EventContext) input.Status {
	if text == input.TextPaste {
		pasted, ok := clipboardOf(ctx).Read(input.ClipboardStandard)
		if !ok {
			return input.Ignored
		}
		text = pasted
	} else if !typeable(text) {
		return input.Ignored
	}
	text = strings.TrimSpace(text)
	return n.apply(field.PreviewInsert(text), field, ctx, func() { field.Insert(text) })
}

// typeable reports whether typed text may enter a number field: any
// integer literal, a sign, or a decimal point.
func typeable(text string) bool {
	if text == "-" || text == "." {
		return true
	}
	_, err := strconv.ParseInt(text, 10, 64)
	return err == nil
}

func (n *NumberInput[T]) backspace(field *TextInputState, ctx *core.EventContext) input.Status {
	zero := numeric.Format(numeric.Zero[T]())
	if field.Text() == zero {
		return input.Ignored
	}
	candidate, ok := field.PreviewDeleteBackward()
	if !ok {
		return input.Ignored
	}
	if candidate == "" {
		return n.apply(zero, field, ctx, func() { field.SetText(zero) })
	}
	return n.apply(candidate, field, ctx, func() { field.DeleteBackward() })
}

func (n *NumberInput[T]) deleteForward(field *TextInputState, ctx *core.EventContext) input.Status {
	zero := numeric.Format(numeric.Zero[T]())
	candidate, ok := field.PreviewDeleteForward()
	if !ok {
		return input.Ignored
	}
	if candidate == "" {
		return n.apply(zero, field, ctx, func() { field.SetText(zero) })
	}
	return n.apply(candidate, field, ctx, func() { field.DeleteForward() })
}

// apply evaluates a candidate buffer and performs edit unless the candidate
// is rejected. A commit updates the value and publishes NumberChanged. The
// buffer keeps the typed text, so "1." survives until the field loses focus.
func (n *NumberInput[T]) apply(candidate string, field *TextInputState, ctx *core.EventContext, edit func()) input.Status {
	result := n.domain.Evaluate(candidate, n.value)
	switch result.Verdict {
	case numeric.Commit:
		edit()
		n.value = result.Value
		field.synced = numeric.Format(n.value)
		ctx.Shell.Publish(NumberChanged[T]{Source: n.source, Value: n.value})
	case numeric.Defer:
		edit()
	default:
		return input.Ignored
	}
	ctx.Shell.InvalidateLayout()
	return input.Captured
}

func (n *NumberInput[T]) increase(field *TextInputState, ctx *core.EventContext) {
	n.step(n.domain.Increase, field, ctx)
}

func (n *NumberInput[T]) decrease(field *TextInputState, ctx *core.EventContext) {
	n.step(n.domain.Decrease, field, ctx)
}

func (n *NumberInput[T]) step(fn func(T) (T, bool), field *TextInputState, ctx *core.EventContext) {
	ctx.Shell.RequestRedraw()
	next, changed := fn(n.value)
	if !changed {
		return
	}
	n.value = next
	field.Sync(numeric.Format(next))
	ctx.Shell.Publish(NumberChanged[T]{Source: n.source, Value: next})
	ctx.Shell.InvalidateLayout()
}

func (n *NumberInput[T]) MouseInteraction(tree *core.Tree, region layout.Region, cursor input.Cursor, _ graphics.Rect) input.Interaction {
	if n.domain.Inert() {
		return input.InteractionIdle
	}
	parts := regionsOf(region)
	if !n.ignoreButtons {
		if cursor.IsOver(parts.increase.Bounds()) && !n.domain.IncreaseDisabled(n.value) {
			return input.InteractionPointer
		}
		if cursor.IsOver(parts.decrease.Bounds()) && !n.domain.DecreaseDisabled(n.value) {
			return input.InteractionPointer
		}
	}
	if cursor.IsOver(region.Bounds()) {
		return input.InteractionText
	}
	return input.InteractionIdle
}

// Operate hides the field of an inert input from focus operations.
func (n *NumberInput[T]) Operate(tree *core.Tree, region layout.Region, op core.Operation) {
	if n.domain.Inert() {
		return
	}
	parts := regionsOf(region)
	n.content().Operate(tree.Child(0), parts.content, op)
}
