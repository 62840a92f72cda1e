package theme

import (
	"fmt"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ParseBrightness parses "light" or "dark".
func ParseBrightness(s string) (Brightness, error) {
	switch s {
	case "light", "":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	default:
		return 0, fmt.Errorf("unknown theme mode %q", s)
	}
}

// ColorScheme is the Fluent palette: layered fills, strokes and text colors
// over a solid background, plus the system accent.
type ColorScheme struct {
	// Accent is the system accent used for focus and primary actions.
	Accent graphics.Color
	// AccentSecondary is the accent while hovered.
	AccentSecondary graphics.Color
	// AccentTertiary is the accent while pressed.
	AccentTertiary graphics.Color
	// OnAccent is text drawn over the accent.
	OnAccent graphics.Color

	Background graphics.Color
	Layer      graphics.Color

	ControlFill          graphics.Color
	ControlFillSecondary graphics.Color
	ControlFillTertiary  graphics.Color
	ControlFillDisabled  graphics.Color
	ControlFillInput     graphics.Color

	SubtleFillSecondary graphics.Color
	SubtleFillTertiary  graphics.Color

	ControlStroke       graphics.Color
	ControlStrongStroke graphics.Color

	TextPrimary   graphics.Color
	TextSecondary graphics.Color
	TextDisabled  graphics.Color
}

// LightColorScheme returns the Fluent light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Accent:               graphics.Color(0xFF0067C0),
		AccentSecondary:      graphics.Color(0xE60067C0),
		AccentTertiary:       graphics.Color(0xCC0067C0),
		OnAccent:             graphics.ColorWhite,
		Background:           graphics.Color(0xFFF3F3F3),
		Layer:                graphics.Color(0x80FFFFFF),
		ControlFill:          graphics.Color(0xB3FFFFFF),
		ControlFillSecondary: graphics.Color(0x80F9F9F9),
		ControlFillTertiary:  graphics.Color(0x4DF9F9F9),
		ControlFillDisabled:  graphics.Color(0x4DF9F9F9),
		ControlFillInput:     graphics.Color(0xFFFFFFFF),
		SubtleFillSecondary:  graphics.Color(0x09000000),
		SubtleFillTertiary:   graphics.Color(0x06000000),
		ControlStroke:        graphics.Color(0x0F000000),
		ControlStrongStroke:  graphics.Color(0x72000000),
		TextPrimary:          graphics.Color(0xE4000000),
		TextSecondary:        graphics.Color(0x9E000000),
		TextDisabled:         graphics.Color(0x5C000000),
	}
}

// DarkColorScheme returns the Fluent dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Accent:               graphics.Color(0xFF4CC2FF),
		AccentSecondary:      graphics.Color(0xE64CC2FF),
		AccentTertiary:       graphics.Color(0xCC4CC2FF),
		OnAccent:             graphics.Color(0xFF000000),
		Background:           graphics.Color(0xFF202020),
		Layer:                graphics.Color(0x4C3A3A3A),
		ControlFill:          graphics.Color(0x0FFFFFFF),
		ControlFillSecondary: graphics.Color(0x15FFFFFF),
		ControlFillTertiary:  graphics.Color(0x08FFFFFF),
		ControlFillDisabled:  graphics.Color(0x0BFFFFFF),
		ControlFillInput:     graphics.Color(0xFF1F1F1F),
		SubtleFillSecondary:  graphics.Color(0x0FFFFFFF),
		SubtleFillTertiary:   graphics.Color(0x0AFFFFFF),
		ControlStroke:        graphics.Color(0x12FFFFFF),
		ControlStrongStroke:  graphics.Color(0x8BFFFFFF),
		TextPrimary:          graphics.ColorWhite,
		TextSecondary:        graphics.Color(0xC5FFFFFF),
		TextDisabled:         graphics.Color(0x5DFFFFFF),
	}
}

// WithAccent returns a copy of the scheme using accent, deriving the hover
// and pressed variants from its alpha.
func (c ColorScheme) WithAccent(accent graphics.Color) ColorScheme {
	c.Accent = accent
	c.AccentSecondary = accent.WithAlpha(0.9)
	c.AccentTertiary = accent.WithAlpha(0.8)
	return c
}
