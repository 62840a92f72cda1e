package errors

// MustChild returns children[index] or panics with a *LayoutError naming
// widget and what.
func MustChild[T any](children []T, index int, widget, what string) T {
	if index < 0 || index >= len(children) {
		panic(&LayoutError{Widget: widget, Child: what, Index: index, Have: len(children)})
	}
	return children[index]
}
