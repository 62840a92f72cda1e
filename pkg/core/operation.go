package core

// Focusable is state that can hold keyboard focus.
type Focusable interface {
	IsFocused() bool
	Focus()
	Unfocus()
}

// Operation visits the widgets of a tree. Widgets owning focusable state
// report it through Focusable; containers forward the operation to their
// children.
type Operation interface {
	Focusable(state Focusable, key any)
}

// FocusCount counts focusable widgets and finds the focused one.
type FocusCount struct {
	Total int
	// Focused is the index of the focused widget, or -1.
	Focused int
}

// NewFocusCount returns an operation with no focus found yet.
func NewFocusCount() *FocusCount {
	return &FocusCount{Focused: -1}
}

func (o *FocusCount) Focusable(state Focusable, _ any) {
	if state.IsFocused() {
		o.Focused = o.Total
	}
	o.Total++
}

// FocusIndex focuses the widget at Target and unfocuses the rest.
type FocusIndex struct {
	Target  int
	current int
}

func (o *FocusIndex) Focusable(state Focusable, _ any) {
	if o.current == o.Target {
		state.Focus()
	} else {
		state.Unfocus()
	}
	o.current++
}

// FocusKey focuses the widget reporting Key and unfocuses the rest. Widgets
// reporting a key that cannot be compared are only unfocused.
type FocusKey struct {
	Key any
}

func (o FocusKey) Focusable(state Focusable, key any) {
	if comparableKey(key) && key == o.Key {
		state.Focus()
	} else {
		state.Unfocus()
	}
}

// UnfocusAll removes focus from every widget.
type UnfocusAll struct{}

func (UnfocusAll) Focusable(state Focusable, _ any) {
	state.Unfocus()
}

// AnyFocused records whether a focused widget was visited.
type AnyFocused struct {
	Found bool
}

func (o *AnyFocused) Focusable(state Focusable, _ any) {
	if state.IsFocused() {
		o.Found = true
	}
}
