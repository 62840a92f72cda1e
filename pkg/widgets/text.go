package widgets

import (
	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// Text displays a single line of text with a single style.
//
// A zero Style.Color inherits the foreground of the enclosing widget, so
// a label inside a Button picks up the button's text color. A zero font
// size or line height falls back to the Fluent body ramp (14 over 20).
//
//	widgets.Text{Content: "Hello"}
//
//	// Centered icon glyph in a fixed box
//	widgets.Text{
//	    Content:   icons.ChevronUp.Glyph(),
//	    Style:     graphics.TextStyle{FontFamily: "Segoe Fluent Icons", FontSize: 10},
//	    Width:     layout.Fixed(16),
//	    Alignment: layout.AlignmentCenter,
//	}
type Text struct {
	// Content is the text string to display.
	Content string
	// Style controls the font, size, color, and line height.
	Style graphics.TextStyle
	// Width and Height size the text box; Shrink fits the measured text.
	Width  layout.Length
	Height layout.Length
	// Alignment positions the text within a box larger than the text.
	// The zero value centers it.
	Alignment layout.Alignment
}

// TextOf creates a Text with the given content and the default style.
func TextOf(content string) Text {
	return Text{Content: content}
}

// WithStyle returns a copy of the Text with the given style.
func (t Text) WithStyle(style graphics.TextStyle) Text {
	t.Style = style
	return t
}

// WithSize returns a copy of the Text with the given font size.
func (t Text) WithSize(size float64) Text {
	t.Style.FontSize = size
	return t
}

// WithColor returns a copy of the Text with the given color.
func (t Text) WithColor(color graphics.Color) Text {
	t.Style.Color = color
	return t
}

func (t Text) resolvedStyle() graphics.TextStyle {
	s := t.Style
	s.FontSize = orDefault(s.FontSize, defaultTextSize)
	if s.LineHeight <= 0 {
		s.LineHeight = s.FontSize * defaultLineHeight / defaultTextSize
	}
	return s
}

func (t Text) Sizing() core.Sizing {
	return core.Sizing{Width: t.Width, Height: t.Height}
}

func (t Text) Layout(_ *core.Tree, ctx *core.LayoutContext, constraints layout.Constraints) *layout.Node {
	measured := ctx.LayoutText(t.Content, t.resolvedStyle())
	size := constraints.Width(t.Width).Height(t.Height).Resolve(t.Width, t.Height, measured.Size)
	return layout.NewNode(size)
}

func (t Text) Draw(_ *core.Tree, ctx *core.PaintContext, region layout.Region, _ input.Cursor, viewport graphics.Rect) {
	bounds := region.Bounds()
	if !bounds.Intersects(viewport) || t.Content == "" {
		return
	}
	s := t.resolvedStyle()
	if s.Color == 0 {
		s.Color = foregroundOf(ctx)
	}
	text := ctx.LayoutText(t.Content, s)
	at := bounds.TopLeft().Add(t.Alignment.Offset(bounds.Size(), text.Size))
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(bounds)
	ctx.Canvas.DrawText(text, at)
	ctx.Canvas.Restore()
}

// Description returns the content.
func (t Text) Description() string {
	return t.Content
}
