package theme

import (
	"testing"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

func TestParseBrightness(t *testing.T) {
	tests := []struct {
		in      string
		want    Brightness
		wantErr bool
	}{
		{"light", BrightnessLight, false},
		{"", BrightnessLight, false},
		{"dark", BrightnessDark, false},
		{"sepia", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBrightness(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseBrightness(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseBrightness(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNumberInputStatuses(t *testing.T) {
	th := DefaultLightTheme()
	data := th.NumberInputThemeOf()

	disabled := th.NumberInput(style.ClassDefault, style.StatusDisabled)
	if disabled.ButtonBackground != nil {
		t.Error("disabled buttons should not draw a background")
	}
	if disabled.IconColor != data.DisabledIconColor {
		t.Errorf("disabled icon = %s", disabled.IconColor.Hex())
	}

	pressed := th.NumberInput(style.ClassDefault, style.StatusPressed)
	if pressed.ButtonBackground == nil || *pressed.ButtonBackground != data.PressedBackground {
		t.Error("pressed buttons should use the pressed background")
	}

	active := th.NumberInput(style.ClassAccent, style.StatusActive)
	if active.IconColor != th.ColorScheme.Accent {
		t.Errorf("accent icon = %s", active.IconColor.Hex())
	}
}

func TestWithAccentKeepsOriginal(t *testing.T) {
	base := DefaultDarkTheme()
	accent := graphics.RGB(0xE8, 0x11, 0x23)
	custom := base.WithAccent(accent)
	if custom.ColorScheme.Accent != accent {
		t.Errorf("accent = %s", custom.ColorScheme.Accent.Hex())
	}
	if base.ColorScheme.Accent == accent {
		t.Error("WithAccent must not modify the receiver")
	}
	if got := custom.Underline(style.ClassDefault, true).Color; got != accent {
		t.Errorf("focused underline = %s", got.Hex())
	}
}

func TestComponentOverrides(t *testing.T) {
	th := DefaultLightTheme()
	th.UnderlineTheme = &UnderlineThemeData{Color: graphics.ColorBlack, Width: 3}
	if got := th.Underline(style.ClassDefault, false); got.Width != 3 || got.Color != graphics.ColorBlack {
		t.Errorf("Underline = %+v", got)
	}
	if got := th.Button(style.ClassSubtle, style.StatusActive); got.Background != nil {
		t.Error("subtle buttons have no idle background")
	}
}
