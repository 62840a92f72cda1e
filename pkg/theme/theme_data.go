package theme

import (
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// ThemeData contains all theme configuration for the gallery. It implements
// style.Catalog.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// TextTheme defines text styles.
	TextTheme TextTheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	NumberInputTheme *NumberInputThemeData
	TextFieldTheme   *TextFieldThemeData
	ButtonTheme      *ButtonThemeData
	DropdownTheme    *DropdownThemeData
	UnderlineTheme   *UnderlineThemeData
}

var _ style.Catalog = (*ThemeData)(nil)

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return FromColorScheme(LightColorScheme(), BrightnessLight)
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return FromColorScheme(DarkColorScheme(), BrightnessDark)
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// FromColorScheme builds a theme around colors.
func FromColorScheme(colors ColorScheme, brightness Brightness) *ThemeData {
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.TextPrimary),
		Brightness:  brightness,
	}
}

// WithAccent returns a copy of the theme using accent.
func (t *ThemeData) WithAccent(accent graphics.Color) *ThemeData {
	result := *t
	result.ColorScheme = t.ColorScheme.WithAccent(accent)
	result.TextTheme = DefaultTextTheme(result.ColorScheme.TextPrimary)
	return &result
}

// NumberInputThemeOf returns the number input theme, deriving from ColorScheme if not set.
func (t *ThemeData) NumberInputThemeOf() NumberInputThemeData {
	if t.NumberInputTheme != nil {
		return *t.NumberInputTheme
	}
	return DefaultNumberInputTheme(t.ColorScheme)
}

// TextFieldThemeOf returns the text field theme, deriving from ColorScheme if not set.
func (t *ThemeData) TextFieldThemeOf() TextFieldThemeData {
	if t.TextFieldTheme != nil {
		return *t.TextFieldTheme
	}
	return DefaultTextFieldTheme(t.ColorScheme)
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// DropdownThemeOf returns the dropdown theme, deriving from ColorScheme if not set.
func (t *ThemeData) DropdownThemeOf() DropdownThemeData {
	if t.DropdownTheme != nil {
		return *t.DropdownTheme
	}
	return DefaultDropdownTheme(t.ColorScheme)
}

// UnderlineThemeOf returns the underline theme, deriving from ColorScheme if not set.
func (t *ThemeData) UnderlineThemeOf() UnderlineThemeData {
	if t.UnderlineTheme != nil {
		return *t.UnderlineTheme
	}
	return DefaultUnderlineTheme(t.ColorScheme)
}
