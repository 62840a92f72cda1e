package desktop

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/go-drift/fluent-gallery/pkg/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name fyne.KeyName
		want input.Key
		ok   bool
	}{
		{fyne.KeyUp, input.KeyArrowUp, true},
		{fyne.KeyDown, input.KeyArrowDown, true},
		{fyne.KeyLeft, input.KeyArrowLeft, true},
		{fyne.KeyRight, input.KeyArrowRight, true},
		{fyne.KeyHome, input.KeyHome, true},
		{fyne.KeyEnd, input.KeyEnd, true},
		{fyne.KeyBackspace, input.KeyBackspace, true},
		{fyne.KeyDelete, input.KeyDelete, true},
		{fyne.KeyReturn, input.KeyEnter, true},
		{fyne.KeyEnter, input.KeyEnter, true},
		{fyne.KeyEscape, input.KeyEscape, true},
		{fyne.KeyTab, input.KeyTab, true},
		{fyne.KeyA, input.KeyUnknown, false},
		{fyne.KeySpace, input.KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := translateKey(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("translateKey(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslateModifiers(t *testing.T) {
	got := translateModifiers(fyne.KeyModifierShift | fyne.KeyModifierControl)
	if !got.Shift() || !got.Command() {
		t.Errorf("modifiers = %b, want shift and control", got)
	}
	if got&input.ModAlt != 0 {
		t.Errorf("alt should not be set")
	}
	if translateModifiers(fyne.KeyModifierSuper) != input.ModSuper {
		t.Errorf("super not translated")
	}
	if translateModifiers(0) != 0 {
		t.Errorf("no modifiers should translate to zero")
	}
}

func TestTranslateButton(t *testing.T) {
	tests := []struct {
		in   desktop.MouseButton
		want input.MouseButton
	}{
		{desktop.MouseButtonPrimary, input.MouseButtonPrimary},
		{desktop.MouseButtonSecondary, input.MouseButtonSecondary},
		{desktop.MouseButtonTertiary, input.MouseButtonTertiary},
	}
	for _, tt := range tests {
		got, ok := translateButton(tt.in)
		if !ok || got != tt.want {
			t.Errorf("translateButton(%v) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := translateButton(0); ok {
		t.Errorf("no button should not translate")
	}
}

func TestTranslateShortcut(t *testing.T) {
	tests := []struct {
		in   fyne.Shortcut
		want string
	}{
		{&fyne.ShortcutSelectAll{}, input.TextSelectAll},
		{&fyne.ShortcutCopy{}, input.TextCopy},
		{&fyne.ShortcutPaste{}, input.TextPaste},
		{&fyne.ShortcutCut{}, input.TextCut},
	}
	for _, tt := range tests {
		got, ok := translateShortcut(tt.in)
		if !ok {
			t.Fatalf("%s not translated", tt.in.ShortcutName())
		}
		if got.Key != input.KeyCharacter || got.Text != tt.want || !got.Modifiers.Command() {
			t.Errorf("%s = %+v", tt.in.ShortcutName(), got)
		}
	}
	if _, ok := translateShortcut(&fyne.ShortcutUndo{}); ok {
		t.Errorf("undo should not translate")
	}
}

func TestCursorFor(t *testing.T) {
	if cursorFor(input.InteractionPointer) != desktop.PointerCursor {
		t.Errorf("pointer interaction should use the pointer cursor")
	}
	if cursorFor(input.InteractionText) != desktop.TextCursor {
		t.Errorf("text interaction should use the text cursor")
	}
	if cursorFor(input.InteractionIdle) != desktop.DefaultCursor {
		t.Errorf("idle interaction should use the default cursor")
	}
}
