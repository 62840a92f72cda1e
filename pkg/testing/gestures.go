package testing

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
)

// Tap simulates a primary click at the center of the first node matched by
// finder.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no nodes: %s", finder.Description())
	}
	t.TapAt(result.Bounds().Center())
	return nil
}

// TapAt moves the pointer to pos and clicks the primary button there. It
// returns the status of the press.
func (t *WidgetTester) TapAt(pos graphics.Offset) input.Status {
	t.MoveTo(pos)
	status := t.Dispatch(input.ButtonPressed{Button: input.MouseButtonPrimary})
	t.Dispatch(input.ButtonReleased{Button: input.MouseButtonPrimary})
	return status
}

// PressAt moves the pointer to pos and presses the primary button without
// releasing it.
func (t *WidgetTester) PressAt(pos graphics.Offset) input.Status {
	t.MoveTo(pos)
	return t.Dispatch(input.ButtonPressed{Button: input.MouseButtonPrimary})
}

// ReleaseAt moves the pointer to pos and releases the primary button.
func (t *WidgetTester) ReleaseAt(pos graphics.Offset) input.Status {
	t.MoveTo(pos)
	return t.Dispatch(input.ButtonReleased{Button: input.MouseButtonPrimary})
}

// MoveTo moves the pointer.
func (t *WidgetTester) MoveTo(pos graphics.Offset) input.Status {
	return t.Dispatch(input.CursorMoved{Position: pos})
}

// ScrollAt moves the pointer to pos and scrolls the wheel by dy lines.
// Positive dy scrolls up.
func (t *WidgetTester) ScrollAt(pos graphics.Offset, dy float64) input.Status {
	t.MoveTo(pos)
	return t.Dispatch(input.WheelScrolled{Delta: graphics.Offset{Y: dy}})
}

// PressKey simulates a key press and release and returns the status of the
// press.
func (t *WidgetTester) PressKey(key input.Key) input.Status {
	status := t.Dispatch(input.KeyPressed{Key: key})
	t.Dispatch(input.KeyReleased{Key: key})
	return status
}

// TypeText types text one rune at a time and returns the status of the
// last keystroke.
func (t *WidgetTester) TypeText(text string) input.Status {
	status := input.Ignored
	for _, r := range text {
		status = t.Dispatch(input.KeyPressed{Key: input.KeyCharacter, Text: string(r)})
		t.Dispatch(input.KeyReleased{Key: input.KeyCharacter})
	}
	return status
}

// Shortcut sends one of the control texts such as input.TextSelectAll or
// input.TextPaste.
func (t *WidgetTester) Shortcut(text string) input.Status {
	return t.Dispatch(input.KeyPressed{Key: input.KeyCharacter, Text: text, Modifiers: input.ModControl})
}
