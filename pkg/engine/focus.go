package engine

import "github.com/go-drift/fluent-gallery/pkg/core"

// FocusNext moves focus to the next focusable widget, wrapping around.
func (e *Engine) FocusNext() {
	e.moveFocus(1)
}

// FocusPrevious moves focus to the previous focusable widget, wrapping
// around.
func (e *Engine) FocusPrevious() {
	e.moveFocus(-1)
}

func (e *Engine) moveFocus(delta int) {
	count := core.NewFocusCount()
	e.Operate(count)
	if count.Total == 0 {
		return
	}
	target := 0
	switch {
	case count.Focused >= 0:
		target = (count.Focused + delta + count.Total) % count.Total
	case delta < 0:
		target = count.Total - 1
	}
	e.Operate(&core.FocusIndex{Target: target})
}

// Focus focuses the widget whose focus key equals key and unfocuses every
// other one.
func (e *Engine) Focus(key any) {
	e.Operate(core.FocusKey{Key: key})
}

// Unfocus drops focus from every widget.
func (e *Engine) Unfocus() {
	e.Operate(core.UnfocusAll{})
}

// Focused reports whether any widget holds focus.
func (e *Engine) Focused() bool {
	found := &core.AnyFocused{}
	e.Operate(found)
	return found.Found
}
