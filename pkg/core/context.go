package core

import (
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/style"
)

// Typography names the font families resolved at startup.
type Typography struct {
	// UIFamily is used for all text. Empty means the bundled default.
	UIFamily string
	// IconFamily renders icon glyphs. Empty means no icon font was found and
	// widgets fall back to Unicode symbols.
	IconFamily string
}

// Env carries the services shared by every pass over the tree.
type Env struct {
	Fonts      *graphics.FontManager
	Typography Typography
	Catalog    style.Catalog
}

// LayoutText measures text, returning an empty layout of the requested line
// height when no face can be resolved.
func (e *Env) LayoutText(text string, s graphics.TextStyle) *graphics.TextLayout {
	if s.FontFamily == "" {
		s.FontFamily = e.Typography.UIFamily
	}
	layout, err := graphics.LayoutText(text, s, e.Fonts)
	if err != nil {
		return &graphics.TextLayout{Style: s, LineHeight: s.LineHeight, Size: graphics.Size{Height: s.LineHeight}}
	}
	return layout
}

// HasIconFont reports whether an icon font family was registered.
func (e *Env) HasIconFont() bool {
	return e.Typography.IconFamily != "" && e.Fonts != nil && e.Fonts.HasFamily(e.Typography.IconFamily)
}

// LayoutContext is passed to Widget.Layout.
type LayoutContext struct {
	*Env
}

// PaintContext is passed to Widget.Draw.
type PaintContext struct {
	*Env
	Canvas graphics.Canvas
	// Foreground is the text color inherited from the nearest ancestor
	// that set one, such as a button label.
	Foreground graphics.Color
}

// WithForeground returns a copy of the context with a new inherited text
// color.
func (c *PaintContext) WithForeground(color graphics.Color) *PaintContext {
	next := *c
	next.Foreground = color
	return &next
}

// EventContext is passed to EventHandler.OnEvent.
type EventContext struct {
	*Env
	Shell     *Shell
	Clipboard input.Clipboard
}
