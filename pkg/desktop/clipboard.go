package desktop

import (
	"fyne.io/fyne/v2"

	"github.com/go-drift/fluent-gallery/pkg/input"
)

// Clipboard adapts the fyne clipboard. fyne exposes no primary selection,
// so reads of input.ClipboardPrimary report nothing and writes are dropped.
type Clipboard struct {
	target fyne.Clipboard
}

var _ input.Clipboard = (*Clipboard)(nil)

// NewClipboard wraps target.
func NewClipboard(target fyne.Clipboard) *Clipboard {
	return &Clipboard{target: target}
}

func (c *Clipboard) Read(kind input.ClipboardKind) (string, bool) {
	if c.target == nil || kind != input.ClipboardStandard {
		return "", false
	}
	text := c.target.Content()
	return text, text != ""
}

func (c *Clipboard) Write(kind input.ClipboardKind, text string) {
	if c.target == nil || kind != input.ClipboardStandard {
		return
	}
	c.target.SetContent(text)
}
