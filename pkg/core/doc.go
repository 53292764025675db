// Package core provides the widget and element framework: tree identity,
// diffing, lifecycle, and rebuild scheduling.
//
// The package follows a declarative model: widgets are immutable
// descriptions of what the UI should be, and the framework keeps a
// persistent element tree in sync with the widget trees produced over
// time, reusing elements wherever the (type, key) identity allows.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are
// lightweight configuration values that can be rebuilt frequently without
// performance concerns.
//
// Element is the instantiation of a Widget at a particular location in
// the tree. Elements manage lifecycle and identity; the reconciliation
// algorithm lives in their updateChild step.
//
// BuildOwner decouples marking an element dirty from rebuilding it: dirty
// elements accumulate in the owner and FlushBuild rebuilds them in
// parent-before-child order until the set reaches a fixed point.
//
// The RenderObjectElement family bridges the element tree to the external
// render tree defined by pkg/layout.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state
// struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Label{Text: fmt.Sprintf("Count: %d", s.count)}
//	}
//
// Call SetState to mutate and schedule a rebuild:
//
//	s.SetState(func() { s.count++ })
//
// # State Management
//
// Managed ties a value to a state and rebuilds on change; Observable
// provides thread-safe reactive values; Notifier broadcasts bare events.
// The UseController, UseListenable and UseObservable hooks manage
// subscriptions with automatic cleanup on disposal.
//
// # Failure Containment
//
// A panic inside a widget's Build is caught at the element boundary,
// reported through pkg/errors, and suppressed: the element's previous
// child subtree stays in place, keeping the tree in its last-good state.
package core
