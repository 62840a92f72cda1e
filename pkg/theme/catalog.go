package theme

import (
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

func (t *ThemeData) Background() graphics.Color {
	return t.ColorScheme.Background
}

func (t *ThemeData) TextColor() graphics.Color {
	return t.ColorScheme.TextPrimary
}

func (t *ThemeData) NumberInput(class style.Class, status style.Status) style.NumberInputStyle {
	data := t.NumberInputThemeOf()
	switch status {
	case style.StatusDisabled:
		return style.NumberInputStyle{IconColor: data.DisabledIconColor}
	case style.StatusPressed:
		return style.NumberInputStyle{
			ButtonBackground: style.ColorPtr(data.PressedBackground),
			IconColor:        data.PressedIconColor,
		}
	}
	if class == style.ClassAccent {
		return style.NumberInputStyle{
			ButtonBackground: style.ColorPtr(data.ButtonBackground),
			IconColor:        t.ColorScheme.Accent,
		}
	}
	return style.NumberInputStyle{
		ButtonBackground: style.ColorPtr(data.ButtonBackground),
		IconColor:        data.IconColor,
	}
}

func (t *ThemeData) TextInput(class style.Class, status style.Status) style.TextInputStyle {
	data := t.TextFieldThemeOf()
	s := style.TextInputStyle{
		Background:  data.BackgroundColor,
		BorderColor: data.BorderColor,
		BorderWidth: data.BorderWidth,
		Radius:      data.BorderRadius,
		Placeholder: data.PlaceholderColor,
		Value:       data.TextColor,
		Selection:   data.SelectionColor,
		Caret:       data.CaretColor,
	}
	switch status {
	case style.StatusHovered:
		s.Background = data.HoverBackgroundColor
	case style.StatusFocused:
		s.Background = data.FocusBackgroundColor
	case style.StatusDisabled:
		s.Background = data.DisabledBackground
		s.Value = data.DisabledTextColor
	}
	if class == style.ClassSubtle {
		s.BorderWidth = 0
	}
	return s
}

func (t *ThemeData) PickList(_ style.Class, status style.Status) style.PickListStyle {
	data := t.DropdownThemeOf()
	s := style.PickListStyle{
		Text:        data.TextColor,
		Placeholder: data.PlaceholderColor,
		Handle:      data.HandleColor,
		Background:  data.BackgroundColor,
		BorderColor: data.BorderColor,
		BorderWidth: 1,
		Radius:      data.BorderRadius,
	}
	switch status {
	case style.StatusHovered, style.StatusFocused:
		s.Background = data.HoverBackgroundColor
	case style.StatusDisabled:
		s.Text = data.DisabledTextColor
		s.Handle = data.DisabledTextColor
	}
	return s
}

func (t *ThemeData) Menu(style.Class) style.MenuStyle {
	data := t.DropdownThemeOf()
	return style.MenuStyle{
		Text:               data.TextColor,
		Background:         data.MenuBackgroundColor,
		BorderColor:        data.MenuBorderColor,
		SelectedText:       data.TextColor,
		SelectedBackground: data.SelectedItemColor,
		Radius:             data.BorderRadius,
	}
}

func (t *ThemeData) Button(class style.Class, status style.Status) style.ButtonStyle {
	data := t.ButtonThemeOf()
	bg, fg := data.BackgroundColor, data.ForegroundColor
	if class == style.ClassAccent {
		bg, fg = t.ColorScheme.Accent, t.ColorScheme.OnAccent
	}
	switch status {
	case style.StatusHovered:
		if class == style.ClassAccent {
			bg = t.ColorScheme.AccentSecondary
		} else {
			bg = data.HoverBackgroundColor
		}
	case style.StatusPressed:
		if class == style.ClassAccent {
			bg = t.ColorScheme.AccentTertiary
		} else {
			bg = data.PressedBackgroundColor
		}
	case style.StatusDisabled:
		bg, fg = data.DisabledBackgroundColor, data.DisabledForegroundColor
	}
	s := style.ButtonStyle{
		Background:  style.ColorPtr(bg),
		Text:        fg,
		BorderColor: data.BorderColor,
		BorderWidth: 1,
		Radius:      data.BorderRadius,
	}
	if class == style.ClassSubtle {
		s.BorderWidth = 0
		if status == style.StatusActive {
			s.Background = nil
		}
	}
	return s
}

func (t *ThemeData) Underline(_ style.Class, focused bool) style.UnderlineStyle {
	data := t.UnderlineThemeOf()
	if focused {
		return style.UnderlineStyle{Color: data.FocusedColor, Width: data.FocusedWidth}
	}
	return style.UnderlineStyle{Color: data.Color, Width: data.Width}
}
