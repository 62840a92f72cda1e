package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/icons"
	"github.com/go-drift/fluent-gallery/pkg/layout"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// Fluent body text metrics used when a widget leaves them unset.
const (
	defaultTextSize   = 14
	defaultLineHeight = 20
)

// Centered places a shrink-wrapped child in the middle of a filling
// Container.
func Centered(child core.Widget) Container {
	return Container{
		Child:     child,
		Width:     layout.Fill,
		Height:    layout.Fill,
		Alignment: layout.AlignmentCenter,
	}
}

// Padded wraps a child with the specified padding.
func Padded(padding layout.EdgeInsets, child core.Widget) Container {
	return Container{Padding: padding, Child: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) Space {
	return Space{Height: layout.Fixed(height)}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) Space {
	return Space{Width: layout.Fixed(width)}
}

func orDefault(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}

func foregroundOf(ctx *core.PaintContext) graphics.Color {
	if ctx.Foreground != 0 {
		return ctx.Foreground
	}
	if ctx.Catalog != nil {
		return ctx.Catalog.TextColor()
	}
	return graphics.ColorBlack
}

func catalogOf(env *core.Env) style.Catalog {
	if env != nil && env.Catalog != nil {
		return env.Catalog
	}
	return fallbackCatalog{}
}

// fallbackCatalog keeps widgets drawable when no theme is attached.
type fallbackCatalog struct{}

func (fallbackCatalog) Background() graphics.Color { return graphics.ColorWhite }
func (fallbackCatalog) TextColor() graphics.Color  { return graphics.ColorBlack }

func (fallbackCatalog) NumberInput(style.Class, style.Status) style.NumberInputStyle {
	return style.NumberInputStyle{IconColor: graphics.ColorBlack}
}

func (fallbackCatalog) TextInput(style.Class, style.Status) style.TextInputStyle {
	return style.TextInputStyle{
		Background:  graphics.ColorWhite,
		BorderColor: graphics.RGB(0x8a, 0x8a, 0x8a),
		BorderWidth: 1,
		Radius:      4,
		Placeholder: graphics.RGB(0x8a, 0x8a, 0x8a),
		Value:       graphics.ColorBlack,
		Selection:   graphics.RGBA(0x00, 0x67, 0xc0, 0.4),
		Caret:       graphics.ColorBlack,
	}
}

func (fallbackCatalog) PickList(style.Class, style.Status) style.PickListStyle {
	return style.PickListStyle{
		Text:        graphics.ColorBlack,
		Placeholder: graphics.RGB(0x8a, 0x8a, 0x8a),
		Handle:      graphics.ColorBlack,
		Background:  graphics.ColorWhite,
		BorderColor: graphics.RGB(0x8a, 0x8a, 0x8a),
		BorderWidth: 1,
		Radius:      4,
	}
}

func (fallbackCatalog) Menu(style.Class) style.MenuStyle {
	return style.MenuStyle{
		Text:               graphics.ColorBlack,
		Background:         graphics.ColorWhite,
		BorderColor:        graphics.RGB(0x8a, 0x8a, 0x8a),
		SelectedText:       graphics.ColorWhite,
		SelectedBackground: graphics.RGB(0x00, 0x67, 0xc0),
		Radius:             4,
	}
}

func (fallbackCatalog) Button(style.Class, style.Status) style.ButtonStyle {
	return style.ButtonStyle{
		Background:  style.ColorPtr(graphics.RGB(0xfb, 0xfb, 0xfb)),
		Text:        graphics.ColorBlack,
		BorderColor: graphics.RGB(0x8a, 0x8a, 0x8a),
		BorderWidth: 1,
		Radius:      4,
	}
}

func (fallbackCatalog) Underline(_ style.Class, focused bool) style.UnderlineStyle {
	if focused {
		return style.UnderlineStyle{Color: graphics.RGB(0x00, 0x67, 0xc0), Width: 2}
	}
	return style.UnderlineStyle{Color: graphics.RGB(0x8a, 0x8a, 0x8a), Width: 1}
}

// drawIcon paints icon centered in bounds, using the icon font when one is
// registered and the Unicode fallback in the UI font otherwise.
func drawIcon(ctx *core.PaintContext, icon icons.Icon, size float64, color graphics.Color, bounds graphics.Rect) {
	s := graphics.TextStyle{Color: color, FontSize: size, LineHeight: size * 1.3}
	haveFont := ctx.HasIconFont()
	if haveFont {
		s.FontFamily = ctx.Typography.IconFamily
	}
	glyph := ctx.LayoutText(icon.Text(haveFont), s)
	center := bounds.Center()
	ctx.Canvas.DrawText(glyph, graphics.Offset{
		X: center.X - glyph.Size.Width/2,
		Y: center.Y - glyph.Size.Height/2,
	})
}
