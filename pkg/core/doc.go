// Package core provides the widget protocol and the retained widget-state
// tree.
//
// Widgets are ephemeral descriptions of the UI, rebuilt from application
// state on every view. Anything that must survive a rebuild (a caret
// position, a pressed button) lives in a [Tree] node owned by the engine.
// After each rebuild the engine calls [Tree.Diff] with the new widget, which
// keeps state whose tag still matches and replaces the rest.
//
// # Widget Protocol
//
// Every widget implements [Widget] (layout and draw). Optional interfaces add
// behavior:
//
//   - [Stateful]: the widget owns a state slot in the tree
//   - [Parent]: the widget has child widgets whose state is reconciled
//   - [Differ]: the widget customizes reconciliation
//   - [Keyed]: children are matched by key instead of position
//   - [EventHandler]: the widget reacts to input events
//   - [Interactive]: the widget requests a pointer shape
//   - [Operable]: the widget takes part in operations such as focus traversal
//
// A stateful widget declares its state type through Tag and State:
//
//	func (w *Toggle) Tag() core.Tag  { return core.TagOf[toggleState]() }
//	func (w *Toggle) State() any     { return &toggleState{} }
//
// and reads it back with [StateOf]:
//
//	s := core.StateOf[toggleState](tree)
//
// # Messages
//
// Widgets never call back into the application. They publish message values
// into the [Shell] passed with every event; the runtime delivers them to the
// program in publish order.
package core
