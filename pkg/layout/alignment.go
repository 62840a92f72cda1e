package layout

import "github.com/go-drift/fluent-gallery/pkg/graphics"

// Alignment places a child within a parent. X and Y range from -1 (start)
// to 1 (end); zero is centered.
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// Offset returns the position of a child of size inner within outer.
func (a Alignment) Offset(outer, inner graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: (outer.Width - inner.Width) * (a.X + 1) / 2,
		Y: (outer.Height - inner.Height) * (a.Y + 1) / 2,
	}
}
