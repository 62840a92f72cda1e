package input

import "github.com/go-drift/fluent-gallery/pkg/graphics"

// Cursor is the pointer position as seen by a widget.
type Cursor struct {
	Position  graphics.Offset
	Available bool
}

// At returns a cursor available at position.
func At(position graphics.Offset) Cursor {
	return Cursor{Position: position, Available: true}
}

// Unavailable returns a cursor outside the window.
func Unavailable() Cursor {
	return Cursor{}
}

// IsOver reports whether the cursor is available and inside bounds.
func (c Cursor) IsOver(bounds graphics.Rect) bool {
	return c.Available && bounds.Contains(c.Position)
}

// Interaction is the pointer shape a widget requests.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionPointer
	InteractionText
)

// String returns a human-readable representation of the interaction.
func (i Interaction) String() string {
	switch i {
	case InteractionPointer:
		return "pointer"
	case InteractionText:
		return "text"
	default:
		return "idle"
	}
}
