package layout

import (
	"math"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Constraints bound the size a widget may take.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only admit size.
func Tight(size graphics.Size) Constraints {
	return Constraints{MinWidth: size.Width, MaxWidth: size.Width, MinHeight: size.Height, MaxHeight: size.Height}
}

// Loose returns constraints from zero up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether only one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// Max returns the largest size the constraints admit.
func (c Constraints) Max() graphics.Size {
	return graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Min returns the smallest size the constraints admit.
func (c Constraints) Min() graphics.Size {
	return graphics.Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	c.MinWidth, c.MinHeight = 0, 0
	return c
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Deflate shrinks the constraints by the insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h, v := insets.Horizontal(), insets.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
}

// Width narrows the horizontal bounds for the given length policy.
// Fixed lengths become tight; Shrink and Fill keep the bounds.
func (c Constraints) Width(length Length) Constraints {
	if length.Kind == LengthFixed {
		w := clamp(length.Value, c.MinWidth, c.MaxWidth)
		c.MinWidth, c.MaxWidth = w, w
	}
	return c
}

// Height narrows the vertical bounds for the given length policy.
func (c Constraints) Height(length Length) Constraints {
	if length.Kind == LengthFixed {
		h := clamp(length.Value, c.MinHeight, c.MaxHeight)
		c.MinHeight, c.MaxHeight = h, h
	}
	return c
}

// Resolve computes the final size for width and height policies given the
// intrinsic size of the content. Fill takes the maximum, Fixed its value and
// Shrink the intrinsic size, each clamped to the constraints.
func (c Constraints) Resolve(width, height Length, intrinsic graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  resolveAxis(width, intrinsic.Width, c.MinWidth, c.MaxWidth),
		Height: resolveAxis(height, intrinsic.Height, c.MinHeight, c.MaxHeight),
	}
}

func resolveAxis(length Length, intrinsic, min, max float64) float64 {
	switch length.Kind {
	case LengthFill:
		if math.IsInf(max, 1) {
			return clamp(intrinsic, min, max)
		}
		return max
	case LengthFixed:
		return clamp(length.Value, min, max)
	default:
		return clamp(intrinsic, min, max)
	}
}

func clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
