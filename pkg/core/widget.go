package core

import (
	"reflect"

	"github.com/go-weft/weft/pkg/layout"
)

// Widget is an immutable description of part of the UI. Widgets are cheap
// configuration values; the framework instantiates an Element for each
// widget that actually appears in the tree.
//
// Identity for reuse is (runtime type, key): see [CanUpdate].
type Widget interface {
	// CreateElement returns a fresh, unconfigured element for this widget
	// kind. The framework injects the widget and build owner before Mount.
	CreateElement() Element
	// Key returns the widget's identity tag, or nil when unkeyed. Keys
	// override position-based matching among siblings.
	Key() any
}

// StatelessWidget builds a child widget purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a separately allocated State object that persists
// across widget replacements as long as type and key keep matching.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable data and behavior for a stateful widget.
// Embed [StateBase] to get default implementations of everything except
// Build.
type State interface {
	// InitState runs once, after the state is bound to its element and
	// before the first build.
	InitState()
	// Build produces the child widget tree for the current state.
	Build(ctx BuildContext) Widget
	// SetState runs the mutator and schedules the owning element for
	// rebuild. Mutating fields outside SetState is legal but produces no
	// visual update.
	SetState(fn func())
	// DidUpdateWidget runs after the element swaps in a new widget
	// configuration, before the following rebuild.
	DidUpdateWidget(oldWidget StatefulWidget)
	// DidChangeDependencies runs when an inherited dependency changes.
	DidChangeDependencies()
	// Dispose runs exactly once, at unmount.
	Dispose()
}

// InheritedWidget provides a value to descendant widgets and notifies
// registered dependents when the value changes.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	UpdateShouldNotify(old InheritedWidget) bool
}

// AspectAwareInheritedWidget refines dependent notification to the aspects
// each dependent registered for.
type AspectAwareInheritedWidget interface {
	InheritedWidget
	UpdateShouldNotifyDependent(old InheritedWidget, aspects map[any]struct{}) bool
}

// RenderObjectWidget creates and configures a render object directly.
// The concrete shape is one of [LeafRenderObjectWidget],
// [SingleChildRenderObjectWidget] or [MultiChildRenderObjectWidget].
type RenderObjectWidget interface {
	Widget
	CreateRenderObject(ctx BuildContext) layout.RenderObject
	// UpdateRenderObject copies this widget's configuration onto an
	// existing render object. The render object is guaranteed to have been
	// created by a widget of the same runtime type.
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// LeafRenderObjectWidget produces a render object with no element children.
// Leaf widgets embed [LeafRenderObjectBase] so CreateElement picks the leaf
// element variant.
type LeafRenderObjectWidget interface {
	RenderObjectWidget
}

// SingleChildRenderObjectWidget produces a render object with at most one
// element child.
type SingleChildRenderObjectWidget interface {
	RenderObjectWidget
	ChildWidget() Widget
}

// MultiChildRenderObjectWidget produces a render object with an ordered
// list of element children.
type MultiChildRenderObjectWidget interface {
	RenderObjectWidget
	ChildWidgets() []Widget
}

// CanUpdate reports whether an element configured with the existing widget
// can absorb the next widget in place. This is the single reuse/tear-down
// decision point for the whole system: same runtime type and equal keys.
func CanUpdate(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}
