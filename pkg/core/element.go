package core

import (
	"reflect"
	"time"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/layout"
)

// Lifecycle is the monotonic life stage of an element. No stage is ever
// revisited: initial -> mounted -> defunct.
type Lifecycle int

const (
	// LifecycleInitial is the stage between CreateElement and Mount.
	LifecycleInitial Lifecycle = iota
	// LifecycleMounted is the live stage; the element occupies a tree slot.
	LifecycleMounted
	// LifecycleDefunct is terminal. Defunct elements are permanently inert.
	LifecycleDefunct
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleInitial:
		return "initial"
	case LifecycleMounted:
		return "mounted"
	case LifecycleDefunct:
		return "defunct"
	default:
		return "invalid"
	}
}

// BuildContext is the interface widgets see during Build. Every element
// implements it; the element hosting the build is passed as the context.
type BuildContext interface {
	// Widget returns the widget currently configuring this context.
	Widget() Widget
	// FindAncestor walks up the element tree and returns the first
	// ancestor matching the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
	// DependOnInherited registers a dependency on the nearest inherited
	// widget of the given type and returns it, or nil when absent.
	DependOnInherited(inheritedType reflect.Type, aspect any) any
	// DependOnInheritedWithAspects registers several aspects in one walk.
	DependOnInheritedWithAspects(inheritedType reflect.Type, aspects ...any) any
}

// Element is the mutable instantiation of a widget at a position in the
// live tree. It owns identity (parent, slot, depth) and lifecycle; the
// reconciliation algorithm lives in updateChild.
type Element interface {
	BuildContext

	// Depth is the distance from the root; a mounted element's depth is
	// always its parent's depth plus one, zero at the root.
	Depth() int
	// Slot returns the parent-assigned position token.
	Slot() any
	// Lifecycle returns the element's current life stage.
	Lifecycle() Lifecycle

	// Mount transitions initial -> mounted, recording parent, slot and
	// depth. Must be called exactly once.
	Mount(parent Element, slot any)
	// Update replaces the stored widget. Requires CanUpdate between the
	// old and new widget.
	Update(newWidget Widget)
	// Unmount transitions mounted -> defunct, recursively. No further
	// calls are valid after Unmount.
	Unmount()
	// DetachRenderObject detaches this subtree's render objects from the
	// external render tree. The traversal stops at the first render
	// element on each path: removing that render object removes its
	// render descendants transitively.
	DetachRenderObject()
	// UpdateSlot moves the element to a new slot, propagating through
	// non-render elements down to the first render element on each path.
	UpdateSlot(newSlot any)

	// MarkNeedsBuild flags the element dirty and registers it with the
	// build owner. Idempotent while dirty.
	MarkNeedsBuild()
	// RebuildIfNeeded rebuilds the element if it is dirty and mounted.
	RebuildIfNeeded()

	// VisitChildren calls the visitor for each live child element, in
	// order, stopping early when the visitor returns false.
	VisitChildren(visitor func(Element) bool)
}

// elementBase carries the tree position and lifecycle bookkeeping shared
// by every element kind.
type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	lifecycle  Lifecycle
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) Slot() any {
	return e.slot
}

func (e *elementBase) Lifecycle() Lifecycle {
	return e.lifecycle
}

func (e *elementBase) MarkNeedsBuild() {
	assertf(e.lifecycle != LifecycleDefunct, "MarkNeedsBuild on defunct element %T", e.self)
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.lifecycle == LifecycleMounted
}

// mount records tree position and flips the lifecycle. Shared by every
// element kind's Mount.
func (e *elementBase) mount(parent Element, slot any) {
	assertf(e.lifecycle == LifecycleInitial, "Mount on %s element %T", e.lifecycle, e.self)
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
		assertf(slot != nil, "mounting non-root element %T with nil slot", e.self)
	}
	e.lifecycle = LifecycleMounted
}

// unmount flips the lifecycle to its terminal stage.
func (e *elementBase) unmount() {
	assertf(e.lifecycle == LifecycleMounted, "Unmount on %s element %T", e.lifecycle, e.self)
	e.lifecycle = LifecycleDefunct
}

// childSlot is the slot a non-render element hands to the child it builds:
// the child takes over this element's own position in the render tree. The
// unique-child sentinel stands in at the root, where no slot was assigned.
func (e *elementBase) childSlot() any {
	if e.slot != nil {
		return e.slot
	}
	return UniqueChildSlot
}

// findRenderHost walks up the element tree to the nearest element that
// owns a render object, skipping non-render elements.
func (e *elementBase) findRenderHost() renderObjectHost {
	current := e.parent
	for current != nil {
		if host, ok := current.(renderObjectHost); ok {
			return host
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func (e *elementBase) DependOnInherited(inheritedType reflect.Type, aspect any) any {
	return dependOnInheritedImpl(e.self, inheritedType, aspect)
}

func (e *elementBase) DependOnInheritedWithAspects(inheritedType reflect.Type, aspects ...any) any {
	return dependOnInheritedWithAspects(e.self, inheritedType, aspects...)
}

// safeBuild executes a build function inside a containment boundary. A
// panic is converted into a reported BoundaryError; the caller keeps the
// previous child subtree in place on failure.
func (e *elementBase) safeBuild(buildFn func() Widget) (Widget, *errors.BoundaryError) {
	var built Widget
	var buildErr *errors.BoundaryError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BoundaryError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Element:    reflect.TypeOf(e.self).String(),
					Phase:      "build",
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBoundaryError(buildErr)
		return nil, buildErr
	}
	return built, nil
}

// Inflate creates and configures an element for a widget without mounting
// it. Hosts use it to create the root element; reconciliation uses it for
// every fresh subtree.
func Inflate(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	return Inflate(widget, owner)
}

// MountRoot inflates a widget and mounts it as the root of a new element
// tree bound to the given owner. The returned element is mounted with no
// parent and no slot.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := Inflate(widget, owner)
	if element != nil {
		element.Mount(nil, nil)
	}
	return element
}

// updateChild reconciles one child position: given the element currently
// occupying it (or nil), the widget that should occupy it now (or nil) and
// the slot, it returns the element that occupies the position afterwards.
//
// The reference-equality short-circuit comes first: handing back the exact
// same widget value is a no-op apart from a possible slot move. Otherwise
// CanUpdate decides between in-place update and tear-down plus fresh mount.
func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner, slot any) Element {
	if widget == nil {
		if existing != nil {
			detachChild(existing)
		}
		return nil
	}
	if existing != nil {
		if sameValue(existing.Widget(), widget) {
			if !sameValue(existing.Slot(), slot) {
				existing.UpdateSlot(slot)
			}
			return existing
		}
		if CanUpdate(existing.Widget(), widget) {
			if !sameValue(existing.Slot(), slot) {
				existing.UpdateSlot(slot)
			}
			existing.Update(widget)
			return existing
		}
		detachChild(existing)
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, slot)
	return element
}

// detachChild removes a subtree: render objects detach from the external
// tree exactly once per path, then the subtree unmounts depth-first.
func detachChild(child Element) {
	child.DetachRenderObject()
	child.Unmount()
}

// sameValue compares two interface values, treating non-comparable dynamic
// types as never equal instead of panicking.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// isComparable reports whether == is safe on the value. The check is on
// the value, not its type: a comparable struct still panics under == when
// an interface field holds a slice, map, or func, so the type-level answer
// is not enough.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// VisitDescendants walks the live element tree below root in depth-first
// pre-order. Traversal stops early when the visitor returns false. The
// walk keeps no state between calls, so it is freely restartable.
func VisitDescendants(root Element, visitor func(Element) bool) {
	if root == nil {
		return
	}
	visitDescendants(root, visitor)
}

func visitDescendants(element Element, visitor func(Element) bool) bool {
	keepGoing := true
	element.VisitChildren(func(child Element) bool {
		if !visitor(child) {
			keepGoing = false
			return false
		}
		if !visitDescendants(child, visitor) {
			keepGoing = false
			return false
		}
		return true
	})
	return keepGoing
}

// renderObjectOf returns the render object reachable from an element: its
// own for render elements, the first render descendant's otherwise.
func renderObjectOf(element Element) layout.RenderObject {
	if element == nil {
		return nil
	}
	if provider, ok := element.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}
