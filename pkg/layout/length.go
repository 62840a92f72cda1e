package layout

import "fmt"

// LengthKind selects how a Length is resolved.
type LengthKind int

const (
	// LengthShrink takes the content's intrinsic size.
	LengthShrink LengthKind = iota
	// LengthFill takes all available space.
	LengthFill
	// LengthFixed takes an exact amount of logical pixels.
	LengthFixed
)

// Length is a sizing policy for one axis.
type Length struct {
	Kind  LengthKind
	Value float64
}

var (
	// Shrink sizes to content.
	Shrink = Length{Kind: LengthShrink}
	// Fill sizes to the available space.
	Fill = Length{Kind: LengthFill}
)

// Fixed returns a fixed length of v logical pixels.
func Fixed(v float64) Length {
	return Length{Kind: LengthFixed, Value: v}
}

// String returns a human-readable representation of the length.
func (l Length) String() string {
	switch l.Kind {
	case LengthShrink:
		return "shrink"
	case LengthFill:
		return "fill"
	case LengthFixed:
		return fmt.Sprintf("fixed(%g)", l.Value)
	default:
		return fmt.Sprintf("Length(%d)", int(l.Kind))
	}
}
