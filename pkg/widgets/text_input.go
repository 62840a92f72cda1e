package widgets

import (
	"math"
	"unicode"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// TextInput is a single-line editable text field.
//
// The field keeps its own edit buffer in [TextInputState]. Value is the
// text the application holds; whenever it changes between rebuilds the
// buffer is replaced with it. Edits publish OnInput(buffer) so the
// application can store the new text and pass it back as Value.
//
//	TextInputOf("Name", m.name).
//	    WithOnInput(func(s string) any { return NameChanged{s} })
//
// Supported editing: typing, Backspace and Delete, arrows with Shift to
// select, Home and End, select all, copy, cut and paste through the
// clipboard, and click or drag to place the caret. Enter publishes
// OnSubmit.
type TextInput struct {
	Placeholder string
	Value       string
	// Size is the font size. Defaults to 14 if zero.
	Size float64
	// LineHeight is the height of the text line. Defaults to 20 if zero.
	LineHeight float64
	Padding    layout.EdgeInsets
	Width      layout.Length
	// Font is the font family; empty uses the UI family.
	Font  string
	Class style.Class
	// Style overrides the catalog style when set.
	Style func(c style.Catalog, status style.Status) style.TextInputStyle
	// OnInput maps the edited buffer to a message.
	OnInput func(text string) any
	// OnSubmit is published when Enter is pressed while focused.
	OnSubmit any
	// ResetOnBlur discards buffer text the application did not accept
	// when the field loses focus.
	ResetOnBlur bool
	// ID identifies the field for focus operations.
	ID       any
	Disabled bool
}

// TextChanged is the message built by TextChangedFor.
type TextChanged struct {
	Source any
	Value  string
}

// TextChangedFor returns an OnInput handler publishing TextChanged for
// source.
func TextChangedFor(source any) func(text string) any {
	return func(text string) any {
		return TextChanged{Source: source, Value: text}
	}
}

// TextInputOf creates a filling text field with Fluent default metrics.
func TextInputOf(placeholder, value string) TextInput {
	return TextInput{
		Placeholder: placeholder,
		Value:       value,
		Size:        defaultTextSize,
		LineHeight:  defaultLineHeight,
		Padding:     layout.EdgeInsetsAll(5),
		Width:       layout.Fill,
	}
}

// WithOnInput returns a copy of the field with the given input handler.
func (t TextInput) WithOnInput(onInput func(text string) any) TextInput {
	t.OnInput = onInput
	return t
}

// WithOnSubmit returns a copy of the field with the given submit message.
func (t TextInput) WithOnSubmit(msg any) TextInput {
	t.OnSubmit = msg
	return t
}

// WithWidth returns a copy of the field with the given width policy.
func (t TextInput) WithWidth(width layout.Length) TextInput {
	t.Width = width
	return t
}

// WithID returns a copy of the field with the given focus identifier.
func (t TextInput) WithID(id any) TextInput {
	t.ID = id
	return t
}

func (t TextInput) Tag() core.Tag { return core.TagOf[TextInputState]() }

func (t TextInput) State() any { return newTextInputState(t.Value, t.ResetOnBlur) }

func (t TextInput) Key() any { return t.ID }

func (t TextInput) Sizing() core.Sizing {
	return core.Sizing{Width: t.Width, Height: layout.Shrink}
}

func (t TextInput) Diff(tree *core.Tree) {
	state := core.StateOf[TextInputState](tree)
	state.resetOnBlur = t.ResetOnBlur
	if t.Value != state.synced {
		state.Sync(t.Value)
	}
	tree.Children = nil
}

func (t TextInput) textStyle(color graphics.Color) graphics.TextStyle {
	return graphics.TextStyle{
		Color:      color,
		FontFamily: t.Font,
		FontSize:   orDefault(t.Size, defaultTextSize),
		LineHeight: orDefault(t.LineHeight, defaultLineHeight),
	}
}

func (t TextInput) Layout(tree *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	state := core.StateOf[TextInputState](tree)
	shown := state.Text()
	if shown == "" {
		shown = t.Placeholder
	}
	lineHeight := orDefault(t.LineHeight, defaultLineHeight)
	measured := ctx.LayoutText(shown, t.textStyle(0))

	limits := constraints.Width(t.Width)
	intrinsic := graphics.Size{
		// One extra pixel keeps the caret visible at the end of the text.
		Width:  measured.Size.Width + 1 + t.Padding.Horizontal(),
		Height: lineHeight + t.Padding.Vertical(),
	}
	size := limits.Resolve(t.Width, layout.Shrink, intrinsic)
	text := layout.NewNode(graphics.Size{
		Width:  math.Max(0, size.Width-t.Padding.Horizontal()),
		Height: lineHeight,
	}).Move(graphics.Offset{
		X: t.Padding.Left,
		Y: t.Padding.Top + math.Max(0, size.Height-t.Padding.Vertical()-lineHeight)/2,
	})
	return layout.WithChildren(size, text)
}

func (t TextInput) status(state *TextInputState, region layout.Region, cursor input.Cursor) style.Status {
	switch {
	case t.Disabled:
		return style.StatusDisabled
	case state.focused:
		return style.StatusFocused
	case cursor.IsOver(region.Bounds()):
		return style.StatusHovered
	default:
		return style.StatusActive
	}
}

func (t TextInput) resolveStyle(c style.Catalog, status style.Status) style.TextInputStyle {
	if t.Style != nil {
		return t.Style(c, status)
	}
	return c.TextInput(t.Class, status)
}

// scrollOffset keeps the caret inside a text area narrower than the text.
func scrollOffset(text *graphics.TextLayout, caret int, width float64) float64 {
	if text.Size.Width <= width {
		return 0
	}
	x := text.OffsetAt(caret)
	return math.Max(0, math.Min(x-width+1, text.Size.Width-width+1))
}

func (t TextInput) Draw(tree *core.Tree, ctx *core.PaintContext, region layout.Region, cursor input.Cursor, viewport graphics.Rect) {
	bounds := region.Bounds()
	if !bounds.Intersects(viewport) {
		return
	}
	state := core.StateOf[TextInputState](tree)
	s := t.resolveStyle(catalogOf(ctx.Env), t.status(state, region, cursor))

	rrect := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(s.Radius))
	ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(s.Background))
	if s.BorderWidth > 0 {
		ctx.Canvas.DrawRRect(rrect, graphics.StrokePaint(s.BorderColor, s.BorderWidth))
	}

	area, ok := region.Child(0)
	if !ok {
		return
	}
	textBounds := area.Bounds()
	ctx.Canvas.Save()
	defer ctx.Canvas.Restore()
	ctx.Canvas.ClipRect(textBounds)

	if state.Len() == 0 {
		if t.Placeholder != "" {
			placeholder := ctx.LayoutText(t.Placeholder, t.textStyle(s.Placeholder))
			ctx.Canvas.DrawText(placeholder, graphics.Offset{
				X: textBounds.Left,
				Y: textBounds.Top + (textBounds.Height()-placeholder.Size.Height)/2,
			})
		}
		if state.focused {
			drawCaret(ctx.Canvas, textBounds, textBounds.Left, s.Caret)
		}
		return
	}

	text := ctx.LayoutText(state.Text(), t.textStyle(s.Value))
	c := state.Cursor()
	left := textBounds.Left - scrollOffset(text, c.Caret, textBounds.Width())
	if state.focused && c.HasSelection() {
		ctx.Canvas.DrawRect(graphics.Rect{
			Left:   left + text.OffsetAt(c.Start),
			Top:    textBounds.Top,
			Right:  left + text.OffsetAt(c.End),
			Bottom: textBounds.Bottom,
		}, graphics.FillPaint(s.Selection))
	}
	ctx.Canvas.DrawText(text, graphics.Offset{
		X: left,
		Y: textBounds.Top + (textBounds.Height()-text.Size.Height)/2,
	})
	if state.focused && !c.HasSelection() {
		drawCaret(ctx.Canvas, textBounds, left+text.OffsetAt(c.Caret), s.Caret)
	}
}

func drawCaret(canvas graphics.Canvas, bounds graphics.Rect, x float64, color graphics.Color) {
	canvas.DrawRect(graphics.Rect{Left: x, Top: bounds.Top, Right: x + 1, Bottom: bounds.Bottom}, graphics.FillPaint(color))
}

// indexAt maps a pointer position to a caret index.
func (t TextInput) indexAt(state *TextInputState, env *core.Env, region layout.Region, position graphics.Offset) int {
	area, ok := region.Child(0)
	if !ok || state.Len() == 0 {
		return 0
	}
	textBounds := area.Bounds()
	text := env.LayoutText(state.Text(), t.textStyle(0))
	offset := scrollOffset(text, state.head, textBounds.Width())
	return text.IndexAtX(position.X - textBounds.Left + offset)
}

func (t TextInput) OnEvent(tree *core.Tree, ev input.Event, region layout.Region, cursor input.Cursor, ctx *core.EventContext) input.Status {
	state := core.StateOf[TextInputState](tree)
	switch ev := ev.(type) {
	case input.ButtonPressed:
		if ev.Button != input.MouseButtonPrimary {
			return input.Ignored
		}
		if !cursor.IsOver(region.Bounds()) || t.Disabled {
			if state.focused {
				state.Unfocus()
				ctx.Shell.RequestRedraw()
			}
			return input.Ignored
		}
		state.Focus()
		state.MoveTo(t.indexAt(state, ctx.Env, region, cursor.Position), state.modifiers.Shift())
		state.dragging = true
		ctx.Shell.RequestRedraw()
		return input.Captured
	case input.CursorMoved:
		if state.dragging {
			state.MoveTo(t.indexAt(state, ctx.Env, region, ev.Position), true)
			ctx.Shell.RequestRedraw()
			return input.Captured
		}
	case input.ButtonReleased:
		state.dragging = false
	case input.ModifiersChanged:
		state.modifiers = ev.Modifiers
	case input.KeyPressed:
		if state.focused {
			return t.onKey(state, ev, ctx)
		}
	}
	return input.Ignored
}

func (t TextInput) onKey(state *TextInputState, ev input.KeyPressed, ctx *core.EventContext) input.Status {
	extend := ev.Modifiers.Shift() || state.modifiers.Shift()
	clipboard := clipboardOf(ctx)

	switch ev.Text {
	case input.TextSelectAll:
		state.SelectAll()
		ctx.Shell.RequestRedraw()
		return input.Captured
	case input.TextCopy:
		if selected := state.Selected(); selected != "" {
			clipboard.Write(input.ClipboardStandard, selected)
		}
		return input.Captured
	case input.TextCut:
		if t.Disabled {
			return input.Ignored
		}
		if selected := state.Selected(); selected != "" {
			clipboard.Write(input.ClipboardStandard, selected)
			state.DeleteBackward()
			t.edited(state, ctx)
		}
		return input.Captured
	case input.TextPaste:
		pasted, ok := clipboard.Read(input.ClipboardStandard)
		if t.Disabled || !ok {
			return input.Ignored
		}
		state.Insert(pasted)
		t.edited(state, ctx)
		return input.Captured
	}

	switch ev.Key {
	case input.KeyEnter:
		ctx.Shell.Publish(t.OnSubmit)
		return input.Captured
	case input.KeyBackspace:
		if !t.Disabled && state.DeleteBackward() {
			t.edited(state, ctx)
		}
		return input.Captured
	case input.KeyDelete:
		if !t.Disabled && state.DeleteForward() {
			t.edited(state, ctx)
		}
		return input.Captured
	case input.KeyArrowLeft:
		state.MoveLeft(extend)
	case input.KeyArrowRight:
		state.MoveRight(extend)
	case input.KeyHome:
		state.MoveTo(0, extend)
	case input.KeyEnd:
		state.MoveTo(state.Len(), extend)
	case input.KeyEscape:
		state.Unfocus()
	case input.KeyCharacter:
		if t.Disabled || !printable(ev.Text) {
			return input.Ignored
		}
		state.Insert(ev.Text)
		t.edited(state, ctx)
		return input.Captured
	default:
		return input.Ignored
	}
	ctx.Shell.RequestRedraw()
	return input.Captured
}

func (t TextInput) edited(state *TextInputState, ctx *core.EventContext) {
	if t.OnInput != nil {
		ctx.Shell.Publish(t.OnInput(state.Text()))
	}
	ctx.Shell.InvalidateLayout()
}

func (t TextInput) MouseInteraction(_ *core.Tree, region layout.Region, cursor input.Cursor, _ graphics.Rect) input.Interaction {
	if !t.Disabled && cursor.IsOver(region.Bounds()) {
		return input.InteractionText
	}
	return input.InteractionIdle
}

func (t TextInput) Operate(tree *core.Tree, _ layout.Region, op core.Operation) {
	op.Focusable(core.StateOf[TextInputState](tree), t.ID)
}

func printable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func clipboardOf(ctx *core.EventContext) input.Clipboard {
	if ctx.Clipboard == nil {
		return input.NullClipboard{}
	}
	return ctx.Clipboard
}
