package graphics

// Canvas records or executes drawing commands.
//
// Coordinates are logical pixels relative to the current transform, which is
// limited to translation. Save/Restore push and pop both the translation and
// the clip.
type Canvas interface {
	// Save pushes the current transform and clip onto a stack.
	Save()

	// Restore pops the transform and clip stack.
	Restore()

	// Translate moves the origin by dx, dy.
	Translate(dx, dy float64)

	// ClipRect restricts drawing to rect, intersected with the current clip.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with a color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawLine draws a straight line between two points.
	DrawLine(start, end Offset, paint Paint)

	// DrawText draws a laid-out run of text with its top-left at position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the canvas dimensions.
	Size() Size
}
