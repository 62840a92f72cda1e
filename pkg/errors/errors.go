// Package errors provides structured error handling for the gallery and its
// widget toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindFont indicates a font that could not be read or parsed.
	KindFont
	// KindRender indicates a rendering error.
	KindRender
	// KindLayout indicates a malformed layout tree.
	KindLayout
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindConfig:
		return "config"
	case KindFont:
		return "font"
	case KindRender:
		return "render"
	case KindLayout:
		return "layout"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FluentError represents a structured error in the gallery.
type FluentError struct {
	// Op is the operation that failed (e.g., "fonts.Discover").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FluentError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FluentError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// LayoutError reports a layout tree that lacks a node a widget relies on.
// It signals a bug in widget construction, never a user error.
type LayoutError struct {
	// Widget names the widget whose layout is malformed.
	Widget string
	// Child describes the missing node.
	Child string
	// Index is the child position that was requested.
	Index int
	// Have is the number of children present.
	Have int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: missing %s layout (child %d of %d)", e.Widget, e.Child, e.Index, e.Have)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FluentError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
