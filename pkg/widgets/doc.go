// Package widgets provides the Fluent controls of the gallery.
//
// The package contains layout widgets (Row, Column, Container, Space),
// display widgets (Text), and input widgets (Button, TextInput,
// NumberInput, PickList, Underline).
//
// # Widget Construction
//
// Widgets use a two-tier construction pattern:
//
// ## Tier 1: Struct Literal (canonical, full control)
//
//	field := TextInput{
//	    Placeholder: "Name",
//	    Value:       m.name,
//	    OnInput:     TextChangedFor("name"),
//	    Width:       layout.Fill,
//	}
//
// ## Tier 2: XxxOf helpers and WithX chaining
//
//	ButtonOf("Reset", ResetPressed{}).WithClass(style.ClassAccent)
//
// WithX methods on value widgets return COPIES; they never mutate the
// receiver. NumberInput is the exception: it is created with
// NewNumberInput and configured through pointer builders, because the
// engine updates its committed value in place while dispatching events.
//
// # Messages
//
// Widgets never call back into application code. Interactions publish
// message values (NumberChanged, TextChanged, PickListSelected, a
// Button's OnPress) to the event shell, and the runtime hands them to the
// program's Update in publish order.
//
// # State
//
// Per-instance state such as a text buffer, caret, focus, or pressed flags
// lives in the core.Tree, keyed by the state type and reconciled by
// widget key and then by position across rebuilds.
package widgets
