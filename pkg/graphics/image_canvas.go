package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa approximates a quarter circle with a cubic Bézier curve.
const kappa = 0.5522847498

type canvasState struct {
	dx, dy float64
	clip   image.Rectangle
}

// ImageCanvas rasterizes drawing commands into an RGBA image.
//
// The transform is limited to translation, and clipping to axis-aligned
// rectangles, which is all the widget tree emits.
type ImageCanvas struct {
	dst   *image.RGBA
	state canvasState
	stack []canvasState
	z     *vector.Rasterizer
}

// NewImageCanvas creates a canvas backed by a new RGBA image of the given
// size in pixels.
func NewImageCanvas(width, height int) *ImageCanvas {
	return NewImageCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageCanvasFor wraps an existing RGBA image.
func NewImageCanvasFor(dst *image.RGBA) *ImageCanvas {
	return &ImageCanvas{
		dst:   dst,
		state: canvasState{clip: dst.Bounds()},
		z:     vector.NewRasterizer(0, 0),
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *ImageCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.deviceRect(rect))
}

func (c *ImageCanvas) Clear(color Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	c.DrawRRect(RRect{Rect: rect}, paint)
}

func (c *ImageCanvas) DrawRRect(rrect RRect, paint Paint) {
	r := rrect.Rect.Translate(c.state.dx, c.state.dy)
	radius := RRect{Rect: r, Radius: rrect.Radius}.clampedRadius()
	if paint.Style == PaintStyleStroke {
		w := paint.StrokeWidth
		if w <= 0 {
			w = 1
		}
		outer := r.Deflate(-w/2, -w/2, -w/2, -w/2)
		inner := r.Deflate(w/2, w/2, w/2, w/2)
		c.fill(paint.Color, outer.Intersect(c.clipRect()), func(z *vector.Rasterizer, o Offset) {
			roundedPath(z, outer.Translate(-o.X, -o.Y), radius+w/2, false)
			if !inner.IsEmpty() {
				roundedPath(z, inner.Translate(-o.X, -o.Y), math.Max(0, radius-w/2), true)
			}
		})
		return
	}
	c.fill(paint.Color, r.Intersect(c.clipRect()), func(z *vector.Rasterizer, o Offset) {
		roundedPath(z, r.Translate(-o.X, -o.Y), radius, false)
	})
}

func (c *ImageCanvas) DrawLine(start, end Offset, paint Paint) {
	a := Offset{X: start.X + c.state.dx, Y: start.Y + c.state.dy}
	b := Offset{X: end.X + c.state.dx, Y: end.Y + c.state.dy}
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length == 0 {
		return
	}
	w := paint.StrokeWidth
	if w <= 0 {
		w = 1
	}
	nx := -(b.Y - a.Y) / length * w / 2
	ny := (b.X - a.X) / length * w / 2
	bounds := Rect{
		Left:   math.Min(a.X, b.X) - w,
		Top:    math.Min(a.Y, b.Y) - w,
		Right:  math.Max(a.X, b.X) + w,
		Bottom: math.Max(a.Y, b.Y) + w,
	}
	c.fill(paint.Color, bounds.Intersect(c.clipRect()), func(z *vector.Rasterizer, o Offset) {
		z.MoveTo(float32(a.X+nx-o.X), float32(a.Y+ny-o.Y))
		z.LineTo(float32(b.X+nx-o.X), float32(b.Y+ny-o.Y))
		z.LineTo(float32(b.X-nx-o.X), float32(b.Y-ny-o.Y))
		z.LineTo(float32(a.X-nx-o.X), float32(a.Y-ny-o.Y))
		z.ClosePath()
	})
}

func (c *ImageCanvas) DrawText(layout *TextLayout, position Offset) {
	if layout == nil || layout.Face == nil || layout.Text == "" {
		return
	}
	clip := c.state.clip.Intersect(c.dst.Bounds())
	if clip.Empty() {
		return
	}
	sub, ok := c.dst.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}
	x := position.X + c.state.dx
	y := position.Y + c.state.dy + layout.Baseline()
	d := font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(layout.Style.Color.NRGBA()),
		Face: layout.Face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))},
	}
	d.DrawString(layout.Text)
}

func (c *ImageCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *ImageCanvas) deviceRect(r Rect) image.Rectangle {
	r = r.Translate(c.state.dx, c.state.dy)
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}

func (c *ImageCanvas) clipRect() Rect {
	b := c.state.clip.Intersect(c.dst.Bounds())
	return Rect{Left: float64(b.Min.X), Top: float64(b.Min.Y), Right: float64(b.Max.X), Bottom: float64(b.Max.Y)}
}

// fill rasterizes the path built by build into area. The path is expressed
// relative to the origin passed to build.
func (c *ImageCanvas) fill(color Color, area Rect, build func(z *vector.Rasterizer, origin Offset)) {
	if area.IsEmpty() || color.Alpha() == 0 {
		return
	}
	bounds := image.Rect(
		int(math.Floor(area.Left)), int(math.Floor(area.Top)),
		int(math.Ceil(area.Right)), int(math.Ceil(area.Bottom)),
	).Intersect(c.state.clip).Intersect(c.dst.Bounds())
	if bounds.Empty() {
		return
	}
	origin := Offset{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y)}
	c.z.Reset(bounds.Dx(), bounds.Dy())
	c.z.DrawOp = draw.Over
	build(c.z, origin)
	c.z.Draw(c.dst, bounds, image.NewUniform(color.NRGBA()), image.Point{})
}

// roundedPath appends a closed rounded rectangle. Reversed paths wind the
// other way so they cut holes out of an enclosing path.
func roundedPath(z *vector.Rasterizer, r Rect, radius float64, reversed bool) {
	l, t, rt, b := float32(r.Left), float32(r.Top), float32(r.Right), float32(r.Bottom)
	if radius <= epsilon {
		if reversed {
			z.MoveTo(l, t)
			z.LineTo(l, b)
			z.LineTo(rt, b)
			z.LineTo(rt, t)
		} else {
			z.MoveTo(l, t)
			z.LineTo(rt, t)
			z.LineTo(rt, b)
			z.LineTo(l, b)
		}
		z.ClosePath()
		return
	}
	rad := float32(radius)
	k := rad * kappa
	if reversed {
		z.MoveTo(l+rad, t)
		z.CubeTo(l+rad-k, t, l, t+rad-k, l, t+rad)
		z.LineTo(l, b-rad)
		z.CubeTo(l, b-rad+k, l+rad-k, b, l+rad, b)
		z.LineTo(rt-rad, b)
		z.CubeTo(rt-rad+k, b, rt, b-rad+k, rt, b-rad)
		z.LineTo(rt, t+rad)
		z.CubeTo(rt, t+rad-k, rt-rad+k, t, rt-rad, t)
		z.ClosePath()
		return
	}
	z.MoveTo(l+rad, t)
	z.LineTo(rt-rad, t)
	z.CubeTo(rt-rad+k, t, rt, t+rad-k, rt, t+rad)
	z.LineTo(rt, b-rad)
	z.CubeTo(rt, b-rad+k, rt-rad+k, b, rt-rad, b)
	z.LineTo(l+rad, b)
	z.CubeTo(l+rad-k, b, l, b-rad+k, l, b-rad)
	z.LineTo(l, t+rad)
	z.CubeTo(l, t+rad-k, l+rad-k, t, l+rad, t)
	z.ClosePath()
}
