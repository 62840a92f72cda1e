// Package icons is the table of Fluent icon glyphs used by the gallery.
//
// Codepoints address the Segoe Fluent Icons private use area, which the
// Fluent System Icons fallback font mirrors for the glyphs listed here. Each
// icon carries a Unicode fallback for when no icon font is available.
package icons

import "sort"

// Icon is a glyph in the icon font.
type Icon struct {
	Name      string
	Codepoint rune
	// Fallback is drawn with the UI font when no icon font is registered.
	Fallback string
}

// Glyph returns the icon font codepoint as a string.
func (i Icon) Glyph() string {
	return string(i.Codepoint)
}

// Text returns the glyph when an icon font is available and the fallback
// otherwise.
func (i Icon) Text(haveIconFont bool) string {
	if haveIconFont || i.Fallback == "" {
		return i.Glyph()
	}
	return i.Fallback
}

var (
	Add          = Icon{Name: "Add", Codepoint: 0xE710, Fallback: "+"}
	Back         = Icon{Name: "Back", Codepoint: 0xE72B, Fallback: "←"}
	Brightness   = Icon{Name: "Brightness", Codepoint: 0xE706, Fallback: "☀"}
	BulletedList = Icon{Name: "BulletedList", Codepoint: 0xE8FD, Fallback: "•"}
	Calculator   = Icon{Name: "Calculator", Codepoint: 0xE8EF, Fallback: "#"}
	Cancel       = Icon{Name: "Cancel", Codepoint: 0xE711, Fallback: "×"}
	CheckMark    = Icon{Name: "CheckMark", Codepoint: 0xE73E, Fallback: "✓"}
	ChevronDown  = Icon{Name: "ChevronDown", Codepoint: 0xE70D, Fallback: "▼"}
	ChevronLeft  = Icon{Name: "ChevronLeft", Codepoint: 0xE76B, Fallback: "◀"}
	ChevronRight = Icon{Name: "ChevronRight", Codepoint: 0xE76C, Fallback: "▶"}
	ChevronUp    = Icon{Name: "ChevronUp", Codepoint: 0xE70E, Fallback: "▲"}
	Color        = Icon{Name: "Color", Codepoint: 0xE790, Fallback: "◐"}
	Edit         = Icon{Name: "Edit", Codepoint: 0xE70F, Fallback: "✎"}
	Font         = Icon{Name: "Font", Codepoint: 0xE8D2, Fallback: "A"}
	Home         = Icon{Name: "Home", Codepoint: 0xE80F, Fallback: "⌂"}
	QuietHours   = Icon{Name: "QuietHours", Codepoint: 0xE708, Fallback: "☾"}
	Remove       = Icon{Name: "Remove", Codepoint: 0xE738, Fallback: "-"}
	Search       = Icon{Name: "Search", Codepoint: 0xE721, Fallback: "?"}
	Settings     = Icon{Name: "Settings", Codepoint: 0xE713, Fallback: "⚙"}
)

var table = []Icon{
	Add, Back, Brightness, BulletedList, Calculator, Cancel, CheckMark,
	ChevronDown, ChevronLeft, ChevronRight, ChevronUp, Color, Edit, Font,
	Home, QuietHours, Remove, Search, Settings,
}

// All returns every icon sorted by name.
func All() []Icon {
	out := make([]Icon, len(table))
	copy(out, table)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds an icon by name.
func Lookup(name string) (Icon, bool) {
	for _, icon := range table {
		if icon.Name == name {
			return icon, true
		}
	}
	return Icon{}, false
}
