package input

import "sync"

// ClipboardKind selects the standard clipboard or the primary selection.
type ClipboardKind int

const (
	ClipboardStandard ClipboardKind = iota
	ClipboardPrimary
)

// Clipboard reads and writes text.
type Clipboard interface {
	Read(kind ClipboardKind) (string, bool)
	Write(kind ClipboardKind, text string)
}

// MemoryClipboard is an in-process clipboard used by tests and headless
// rendering.
type MemoryClipboard struct {
	mu      sync.Mutex
	entries map[ClipboardKind]string
}

// NewMemoryClipboard returns an empty clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{entries: make(map[ClipboardKind]string)}
}

func (c *MemoryClipboard) Read(kind ClipboardKind) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.entries[kind]
	return text, ok
}

func (c *MemoryClipboard) Write(kind ClipboardKind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[kind] = text
}

// NullClipboard never holds text.
type NullClipboard struct{}

func (NullClipboard) Read(ClipboardKind) (string, bool) { return "", false }
func (NullClipboard) Write(ClipboardKind, string)       {}
