package theme

import (
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// NumberInputThemeData defines styling for the step buttons of number inputs.
type NumberInputThemeData struct {
	// ButtonBackground fills an enabled, idle button.
	ButtonBackground graphics.Color
	// PressedBackground fills a pressed button.
	PressedBackground graphics.Color
	// IconColor is the chevron color of an enabled button.
	IconColor graphics.Color
	// PressedIconColor is the chevron color of a pressed button.
	PressedIconColor graphics.Color
	// DisabledIconColor is the chevron color of a disabled button.
	DisabledIconColor graphics.Color
}

// TextFieldThemeData defines default styling for text fields.
type TextFieldThemeData struct {
	BackgroundColor      graphics.Color
	HoverBackgroundColor graphics.Color
	FocusBackgroundColor graphics.Color
	DisabledBackground   graphics.Color
	BorderColor          graphics.Color
	TextColor            graphics.Color
	PlaceholderColor     graphics.Color
	DisabledTextColor    graphics.Color
	SelectionColor       graphics.Color
	CaretColor           graphics.Color
	BorderRadius         float64
	BorderWidth          float64
}

// ButtonThemeData defines default styling for buttons.
type ButtonThemeData struct {
	BackgroundColor         graphics.Color
	HoverBackgroundColor    graphics.Color
	PressedBackgroundColor  graphics.Color
	ForegroundColor         graphics.Color
	DisabledBackgroundColor graphics.Color
	DisabledForegroundColor graphics.Color
	BorderColor             graphics.Color
	Padding                 layout.EdgeInsets
	BorderRadius            float64
}

// DropdownThemeData defines styling for pick lists and their menus.
type DropdownThemeData struct {
	BackgroundColor      graphics.Color
	HoverBackgroundColor graphics.Color
	BorderColor          graphics.Color
	MenuBackgroundColor  graphics.Color
	MenuBorderColor      graphics.Color
	SelectedItemColor    graphics.Color
	TextColor            graphics.Color
	PlaceholderColor     graphics.Color
	HandleColor          graphics.Color
	DisabledTextColor    graphics.Color
	BorderRadius         float64
}

// UnderlineThemeData defines the bottom stroke drawn beneath inputs.
type UnderlineThemeData struct {
	Color        graphics.Color
	FocusedColor graphics.Color
	Width        float64
	FocusedWidth float64
}

// DefaultNumberInputTheme returns NumberInputThemeData derived from a ColorScheme.
func DefaultNumberInputTheme(colors ColorScheme) NumberInputThemeData {
	return NumberInputThemeData{
		ButtonBackground:  graphics.ColorTransparent,
		PressedBackground: colors.SubtleFillTertiary,
		IconColor:         colors.TextSecondary,
		PressedIconColor:  colors.TextPrimary,
		DisabledIconColor: colors.TextDisabled,
	}
}

// DefaultTextFieldTheme returns TextFieldThemeData derived from a ColorScheme.
func DefaultTextFieldTheme(colors ColorScheme) TextFieldThemeData {
	return TextFieldThemeData{
		BackgroundColor:      colors.ControlFill,
		HoverBackgroundColor: colors.ControlFillSecondary,
		FocusBackgroundColor: colors.ControlFillInput,
		DisabledBackground:   colors.ControlFillDisabled,
		BorderColor:          colors.ControlStroke,
		TextColor:            colors.TextPrimary,
		PlaceholderColor:     colors.TextSecondary,
		DisabledTextColor:    colors.TextDisabled,
		SelectionColor:       colors.Accent.WithAlpha(0.4),
		CaretColor:           colors.TextPrimary,
		BorderRadius:         4,
		BorderWidth:          1,
	}
}

// DefaultButtonTheme returns ButtonThemeData derived from a ColorScheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor:         colors.ControlFill,
		HoverBackgroundColor:    colors.ControlFillSecondary,
		PressedBackgroundColor:  colors.ControlFillTertiary,
		ForegroundColor:         colors.TextPrimary,
		DisabledBackgroundColor: colors.ControlFillDisabled,
		DisabledForegroundColor: colors.TextDisabled,
		BorderColor:             colors.ControlStroke,
		Padding:                 layout.EdgeInsetsSymmetric(12, 5),
		BorderRadius:            4,
	}
}

// DefaultDropdownTheme returns DropdownThemeData derived from a ColorScheme.
func DefaultDropdownTheme(colors ColorScheme) DropdownThemeData {
	return DropdownThemeData{
		BackgroundColor:      colors.ControlFill,
		HoverBackgroundColor: colors.ControlFillSecondary,
		BorderColor:          colors.ControlStroke,
		MenuBackgroundColor:  colors.ControlFillInput,
		MenuBorderColor:      colors.ControlStroke,
		SelectedItemColor:    colors.SubtleFillSecondary,
		TextColor:            colors.TextPrimary,
		PlaceholderColor:     colors.TextSecondary,
		HandleColor:          colors.TextSecondary,
		DisabledTextColor:    colors.TextDisabled,
		BorderRadius:         4,
	}
}

// DefaultUnderlineTheme returns UnderlineThemeData derived from a ColorScheme.
func DefaultUnderlineTheme(colors ColorScheme) UnderlineThemeData {
	return UnderlineThemeData{
		Color:        colors.ControlStrongStroke,
		FocusedColor: colors.Accent,
		Width:        1,
		FocusedWidth: 2,
	}
}
