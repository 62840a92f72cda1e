package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
)

// translateKey maps a fyne key name to a named key. Printable keys arrive
// separately through TypedRune and report false here.
func translateKey(name fyne.KeyName) (input.Key, bool) {
	switch name {
	case fyne.KeyUp:
		return input.KeyArrowUp, true
	case fyne.KeyDown:
		return input.KeyArrowDown, true
	case fyne.KeyLeft:
		return input.KeyArrowLeft, true
	case fyne.KeyRight:
		return input.KeyArrowRight, true
	case fyne.KeyHome:
		return input.KeyHome, true
	case fyne.KeyEnd:
		return input.KeyEnd, true
	case fyne.KeyBackspace:
		return input.KeyBackspace, true
	case fyne.KeyDelete:
		return input.KeyDelete, true
	case fyne.KeyReturn, fyne.KeyEnter:
		return input.KeyEnter, true
	case fyne.KeyEscape:
		return input.KeyEscape, true
	case fyne.KeyTab:
		return input.KeyTab, true
	default:
		return input.KeyUnknown, false
	}
}

func translateModifiers(m fyne.KeyModifier) input.Modifiers {
	var out input.Modifiers
	if m&fyne.KeyModifierShift != 0 {
		out |= input.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= input.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= input.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= input.ModSuper
	}
	return out
}

func translateButton(b desktop.MouseButton) (input.MouseButton, bool) {
	switch {
	case b&desktop.MouseButtonPrimary != 0:
		return input.MouseButtonPrimary, true
	case b&desktop.MouseButtonSecondary != 0:
		return input.MouseButtonSecondary, true
	case b&desktop.MouseButtonTertiary != 0:
		return input.MouseButtonTertiary, true
	default:
		return 0, false
	}
}

// translateShortcut maps the standard editing shortcuts to the control
// characters text inputs understand.
func translateShortcut(s fyne.Shortcut) (input.KeyPressed, bool) {
	var text string
	switch s.(type) {
	case *fyne.ShortcutSelectAll:
		text = input.TextSelectAll
	case *fyne.ShortcutCopy:
		text = input.TextCopy
	case *fyne.ShortcutPaste:
		text = input.TextPaste
	case *fyne.ShortcutCut:
		text = input.TextCut
	default:
		return input.KeyPressed{}, false
	}
	return input.KeyPressed{Key: input.KeyCharacter, Text: text, Modifiers: input.ModControl}, true
}

func translatePosition(p fyne.Position) graphics.Offset {
	return graphics.Offset{X: float64(p.X), Y: float64(p.Y)}
}

func cursorFor(i input.Interaction) desktop.Cursor {
	switch i {
	case input.InteractionPointer:
		return desktop.PointerCursor
	case input.InteractionText:
		return desktop.TextCursor
	default:
		return desktop.DefaultCursor
	}
}
