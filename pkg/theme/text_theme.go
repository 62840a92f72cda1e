package theme

import "github.com/go-drift/fluent-gallery/pkg/graphics"

// TextTheme is the Fluent type ramp.
type TextTheme struct {
	Caption    graphics.TextStyle
	Body       graphics.TextStyle
	BodyStrong graphics.TextStyle
	Subtitle   graphics.TextStyle
	Title      graphics.TextStyle
	TitleLarge graphics.TextStyle
	Display    graphics.TextStyle
}

// DefaultTextTheme returns the type ramp drawn in color.
func DefaultTextTheme(color graphics.Color) TextTheme {
	ramp := func(size, lineHeight float64, weight graphics.FontWeight) graphics.TextStyle {
		return graphics.TextStyle{Color: color, FontSize: size, LineHeight: lineHeight, FontWeight: weight}
	}
	return TextTheme{
		Caption:    ramp(12, 16, graphics.FontWeightNormal),
		Body:       ramp(14, 20, graphics.FontWeightNormal),
		BodyStrong: ramp(14, 20, graphics.FontWeightSemibold),
		Subtitle:   ramp(20, 28, graphics.FontWeightSemibold),
		Title:      ramp(28, 36, graphics.FontWeightSemibold),
		TitleLarge: ramp(40, 52, graphics.FontWeightSemibold),
		Display:    ramp(68, 92, graphics.FontWeightSemibold),
	}
}
