// Package style holds the status enums and style records widgets draw with,
// and the Catalog interface that maps a widget class and status to a style.
//
// The theme package provides the Fluent implementation of Catalog.
package style

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Status is the interaction state a style is resolved for.
type Status int

const (
	StatusActive Status = iota
	StatusHovered
	StatusFocused
	StatusPressed
	StatusDisabled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusHovered:
		return "hovered"
	case StatusFocused:
		return "focused"
	case StatusPressed:
		return "pressed"
	case StatusDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Class selects a family of styles in a Catalog. The empty class is the
// catalog default.
type Class string

const (
	ClassDefault Class = ""
	ClassAccent  Class = "accent"
	ClassSubtle  Class = "subtle"
)

// NumberInputStyle is the appearance of the step buttons of a number input.
type NumberInputStyle struct {
	// ButtonBackground fills the button quad; nil fills it transparent.
	ButtonBackground *graphics.Color
	IconColor        graphics.Color
}

// NumberInputStyleFunc overrides the catalog for a single number input.
type NumberInputStyleFunc func(c Catalog, status Status) NumberInputStyle

// TextInputStyle is the appearance of a text field.
type TextInputStyle struct {
	Background  graphics.Color
	BorderColor graphics.Color
	BorderWidth float64
	Radius      float64
	Placeholder graphics.Color
	Value       graphics.Color
	Selection   graphics.Color
	Caret       graphics.Color
}

// PickListStyle is the appearance of a closed pick list.
type PickListStyle struct {
	Text        graphics.Color
	Placeholder graphics.Color
	Handle      graphics.Color
	Background  graphics.Color
	BorderColor graphics.Color
	BorderWidth float64
	Radius      float64
}

// MenuStyle is the appearance of an open pick list menu.
type MenuStyle struct {
	Text               graphics.Color
	Background         graphics.Color
	BorderColor        graphics.Color
	SelectedText       graphics.Color
	SelectedBackground graphics.Color
	Radius             float64
}

// ButtonStyle is the appearance of a push button.
type ButtonStyle struct {
	// Background is nil for text-only buttons.
	Background  *graphics.Color
	Text        graphics.Color
	BorderColor graphics.Color
	BorderWidth float64
	Radius      float64
}

// UnderlineStyle is the bottom stroke drawn beneath a control.
type UnderlineStyle struct {
	Color graphics.Color
	Width float64
}

// Catalog resolves styles for widget classes.
type Catalog interface {
	// Background is the window background.
	Background() graphics.Color
	// TextColor is the default foreground for plain text.
	TextColor() graphics.Color
	NumberInput(class Class, status Status) NumberInputStyle
	TextInput(class Class, status Status) TextInputStyle
	PickList(class Class, status Status) PickListStyle
	Menu(class Class) MenuStyle
	Button(class Class, status Status) ButtonStyle
	Underline(class Class, focused bool) UnderlineStyle
}

// ColorPtr returns a pointer to c, for optional color fields.
func ColorPtr(c graphics.Color) *graphics.Color {
	return &c
}
