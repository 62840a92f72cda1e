// Package input defines the events delivered to widgets, the status a widget
// reports back, the cursor, the clipboard service and mouse interactions.
//
// Keyboard shortcuts arrive as control characters in [KeyPressed].Text:
// [TextSelectAll], [TextCopy], [TextPaste] and [TextCut]. Shells translate
// their native shortcut events into these so widgets stay platform neutral.
package input
