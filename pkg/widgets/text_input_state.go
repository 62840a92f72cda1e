package widgets

import "github.com/go-drift/fluent-gallery/pkg/input"

// CursorState is the caret and selection of a text input, in rune indices.
type CursorState struct {
	// Caret is the index the caret sits before.
	Caret int
	// Start and End bound the selection. They are equal when nothing is
	// selected.
	Start int
	End   int
}

// HasSelection reports whether a non-empty range is selected.
func (c CursorState) HasSelection() bool {
	return c.Start != c.End
}

// TextInputState is the persistent state of a [TextInput]: the edit buffer,
// the caret, and focus. It lives in the widget tree across rebuilds.
//
// The buffer is resynchronized from the widget's Value whenever that value
// differs from the last one seen, so a controlled input follows the
// application while keeping transient text the application never saw.
type TextInputState struct {
	value []rune
	// anchor is the fixed end of a selection; head is the caret.
	anchor int
	head   int

	focused   bool
	dragging  bool
	modifiers input.Modifiers

	synced      string
	resetOnBlur bool
}

func newTextInputState(value string, resetOnBlur bool) *TextInputState {
	s := &TextInputState{resetOnBlur: resetOnBlur}
	s.Sync(value)
	return s
}

// Text returns the current buffer.
func (s *TextInputState) Text() string {
	return string(s.value)
}

// Len returns the buffer length in runes.
func (s *TextInputState) Len() int {
	return len(s.value)
}

// Cursor returns the caret and selection.
func (s *TextInputState) Cursor() CursorState {
	return CursorState{Caret: s.head, Start: min(s.anchor, s.head), End: max(s.anchor, s.head)}
}

// Selected returns the selected text, or "" without a selection.
func (s *TextInputState) Selected() string {
	c := s.Cursor()
	return string(s.value[c.Start:c.End])
}

func (s *TextInputState) IsFocused() bool {
	return s.focused
}

// Focus focuses the input and moves the caret to the end when it was not
// already focused.
func (s *TextInputState) Focus() {
	if s.focused {
		return
	}
	s.focused = true
	s.MoveTo(len(s.value), false)
}

// Unfocus drops focus. Inputs that reset on blur discard any text the
// application has not accepted.
func (s *TextInputState) Unfocus() {
	if s.focused && s.resetOnBlur {
		s.SetText(s.synced)
	}
	s.focused = false
	s.dragging = false
}

// SetText replaces the buffer. The caret moves to the end unless the text
// is unchanged.
func (s *TextInputState) SetText(text string) {
	if text == string(s.value) {
		return
	}
	s.value = []rune(text)
	s.MoveTo(len(s.value), false)
}

// Sync replaces the buffer and records text as the value the application
// last provided.
func (s *TextInputState) Sync(text string) {
	s.SetText(text)
	s.synced = text
}

// SelectAll selects the whole buffer.
func (s *TextInputState) SelectAll() {
	s.anchor, s.head = 0, len(s.value)
}

// MoveTo places the caret at index, extending the selection when extend is
// set.
func (s *TextInputState) MoveTo(index int, extend bool) {
	index = max(0, min(index, len(s.value)))
	s.head = index
	if !extend {
		s.anchor = index
	}
}

// MoveLeft moves the caret one rune left. Without extend an existing
// selection collapses to its start.
func (s *TextInputState) MoveLeft(extend bool) {
	if c := s.Cursor(); !extend && c.HasSelection() {
		s.MoveTo(c.Start, false)
		return
	}
	s.MoveTo(s.head-1, extend)
}

// MoveRight moves the caret one rune right. Without extend an existing
// selection collapses to its end.
func (s *TextInputState) MoveRight(extend bool) {
	if c := s.Cursor(); !extend && c.HasSelection() {
		s.MoveTo(c.End, false)
		return
	}
	s.MoveTo(s.head+1, extend)
}

// PreviewInsert returns the buffer that Insert would produce without
// changing the state.
func (s *TextInputState) PreviewInsert(text string) string {
	c := s.Cursor()
	return string(splice(s.value, c.Start, c.End, []rune(text)))
}

// Insert replaces the selection, or inserts at the caret, with text.
func (s *TextInputState) Insert(text string) {
	c := s.Cursor()
	runes := []rune(text)
	s.value = splice(s.value, c.Start, c.End, runes)
	s.MoveTo(c.Start+len(runes), false)
}

// PreviewDeleteBackward returns the buffer that DeleteBackward would
// produce, and false when there is nothing to delete.
func (s *TextInputState) PreviewDeleteBackward() (string, bool) {
	start, end, ok := s.backwardRange()
	if !ok {
		return "", false
	}
	return string(splice(s.value, start, end, nil)), true
}

// DeleteBackward removes the selection, or the rune before the caret.
func (s *TextInputState) DeleteBackward() bool {
	start, end, ok := s.backwardRange()
	if !ok {
		return false
	}
	s.value = splice(s.value, start, end, nil)
	s.MoveTo(start, false)
	return true
}

// PreviewDeleteForward returns the buffer that DeleteForward would
// produce, and false when there is nothing to delete.
func (s *TextInputState) PreviewDeleteForward() (string, bool) {
	start, end, ok := s.forwardRange()
	if !ok {
		return "", false
	}
	return string(splice(s.value, start, end, nil)), true
}

// DeleteForward removes the selection, or the rune after the caret.
func (s *TextInputState) DeleteForward() bool {
	start, end, ok := s.forwardRange()
	if !ok {
		return false
	}
	s.value = splice(s.value, start, end, nil)
	s.MoveTo(start, false)
	return true
}

func (s *TextInputState) backwardRange() (int, int, bool) {
	c := s.Cursor()
	if c.HasSelection() {
		return c.Start, c.End, true
	}
	if c.Caret == 0 {
		return 0, 0, false
	}
	return c.Caret - 1, c.Caret, true
}

func (s *TextInputState) forwardRange() (int, int, bool) {
	c := s.Cursor()
	if c.HasSelection() {
		return c.Start, c.End, true
	}
	if c.Caret >= len(s.value) {
		return 0, 0, false
	}
	return c.Caret, c.Caret + 1, true
}

// splice returns a new slice with value[start:end] replaced by insert.
func splice(value []rune, start, end int, insert []rune) []rune {
	out := make([]rune, 0, len(value)-(end-start)+len(insert))
	out = append(out, value[:start]...)
	out = append(out, insert...)
	return append(out, value[end:]...)
}
