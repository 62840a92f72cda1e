package input

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Control characters carried in KeyPressed.Text for editing shortcuts.
const (
	TextSelectAll = "\x01"
	TextCopy      = "\x03"
	TextPaste     = "\x16"
	TextCut       = "\x18"
)

// Event is a user interaction delivered to the widget tree.
type Event interface {
	isEvent()
}

// Key identifies a named key. Printable input uses KeyCharacter with the
// produced text in KeyPressed.Text.
type Key int

const (
	KeyUnknown Key = iota
	KeyCharacter
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "unknown"
	case KeyCharacter:
		return "character"
	case KeyArrowUp:
		return "arrow_up"
	case KeyArrowDown:
		return "arrow_down"
	case KeyArrowLeft:
		return "arrow_left"
	case KeyArrowRight:
		return "arrow_right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyTab:
		return "tab"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Shift reports whether shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Command reports whether the platform command modifier is held.
func (m Modifiers) Command() bool { return m&(ModControl|ModSuper) != 0 }

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonTertiary
)

// KeyPressed is delivered when a key goes down.
type KeyPressed struct {
	Key       Key
	Text      string
	Modifiers Modifiers
}

// KeyReleased is delivered when a key goes up.
type KeyReleased struct {
	Key       Key
	Modifiers Modifiers
}

// ModifiersChanged is delivered when the set of held modifiers changes.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// ButtonPressed is delivered when a mouse button goes down.
type ButtonPressed struct {
	Button MouseButton
}

// ButtonReleased is delivered when a mouse button goes up.
type ButtonReleased struct {
	Button MouseButton
}

// CursorMoved is delivered when the pointer moves.
type CursorMoved struct {
	Position graphics.Offset
}

// CursorLeft is delivered when the pointer leaves the window.
type CursorLeft struct{}

// WheelScrolled is delivered for mouse wheel and touchpad scrolling.
// Positive Y scrolls up.
type WheelScrolled struct {
	Delta graphics.Offset
}

func (KeyPressed) isEvent()       {}
func (KeyReleased) isEvent()      {}
func (ModifiersChanged) isEvent() {}
func (ButtonPressed) isEvent()    {}
func (ButtonReleased) isEvent()   {}
func (CursorMoved) isEvent()      {}
func (CursorLeft) isEvent()       {}
func (WheelScrolled) isEvent()    {}
