package core

import (
	"fmt"
	"reflect"

	"github.com/go-weft/weft/pkg/layout"
)

// renderObjectHost is the element-side protocol for splicing child render
// objects into the external render tree. Exactly one host governs where a
// given render object attaches: the nearest render element ancestor.
type renderObjectHost interface {
	Element
	insertRenderObjectChild(child layout.RenderObject, slot any)
	moveRenderObjectChild(child layout.RenderObject, oldSlot, newSlot any)
	removeRenderObjectChild(child layout.RenderObject, slot any)
}

// renderElementBase is shared by the three render element variants: it
// owns the render object and the link to the host it is attached through.
type renderElementBase struct {
	elementBase
	renderObject layout.RenderObject
	renderHost   renderObjectHost
}

// RenderObject exposes the backing render object for the element.
func (e *renderElementBase) RenderObject() layout.RenderObject {
	return e.renderObject
}

// mountRenderObject records tree position, creates the render object from
// the widget and attaches it under the nearest render ancestor.
func (e *renderElementBase) mountRenderObject(parent Element, slot any) {
	e.mount(parent, slot)
	widget := e.widget.(RenderObjectWidget)
	e.renderObject = widget.CreateRenderObject(e.self)
	if e.buildOwner != nil {
		e.renderObject.SetOwner(e.buildOwner.Pipeline())
	}
	e.attachRenderObject(slot)
}

func (e *renderElementBase) attachRenderObject(slot any) {
	e.renderHost = e.findRenderHost()
	if e.renderHost != nil {
		e.renderHost.insertRenderObjectChild(e.renderObject, slot)
	}
}

// DetachRenderObject removes this render object from its host and stops:
// render descendants are removed transitively by the external render tree,
// so deeper render elements must not detach separately along this path.
// Calling it again is a no-op.
func (e *renderElementBase) DetachRenderObject() {
	if e.renderHost != nil {
		e.renderHost.removeRenderObjectChild(e.renderObject, e.slot)
		e.renderHost = nil
	}
}

// UpdateSlot records the new slot and notifies the host of the move. Slot
// propagation from ancestors stops here: a render element encapsulates the
// positioning of everything below it.
func (e *renderElementBase) UpdateSlot(newSlot any) {
	oldSlot := e.slot
	e.slot = newSlot
	if e.renderHost != nil {
		e.renderHost.moveRenderObjectChild(e.renderObject, oldSlot, newSlot)
	}
}

// updateRenderObject copies the current widget's configuration onto the
// render object.
func (e *renderElementBase) updateRenderObject() {
	widget := e.widget.(RenderObjectWidget)
	widget.UpdateRenderObject(e.self, e.renderObject)
}

// Default child-mutation methods: only the single- and multi-child
// variants shadow these. Reaching them is a framework programming error.

func (e *renderElementBase) insertRenderObjectChild(child layout.RenderObject, slot any) {
	panic(fmt.Sprintf("%s cannot accept child render objects", reflect.TypeOf(e.self)))
}

func (e *renderElementBase) moveRenderObjectChild(child layout.RenderObject, oldSlot, newSlot any) {
	panic(fmt.Sprintf("%s cannot move child render objects", reflect.TypeOf(e.self)))
}

func (e *renderElementBase) removeRenderObjectChild(child layout.RenderObject, slot any) {
	panic(fmt.Sprintf("%s cannot remove child render objects", reflect.TypeOf(e.self)))
}

// LeafRenderObjectElement hosts a render object with no element children.
type LeafRenderObjectElement struct {
	renderElementBase
}

// NewLeafRenderObjectElement creates an unconfigured leaf render element.
func NewLeafRenderObjectElement() *LeafRenderObjectElement {
	element := &LeafRenderObjectElement{}
	element.setSelf(element)
	return element
}

func (e *LeafRenderObjectElement) Mount(parent Element, slot any) {
	e.mountRenderObject(parent, slot)
}

func (e *LeafRenderObjectElement) Update(newWidget Widget) {
	assertf(CanUpdate(e.widget, newWidget), "Update with incompatible widget %T", newWidget)
	e.widget = newWidget
	e.dirty = false
	e.updateRenderObject()
}

func (e *LeafRenderObjectElement) Unmount() {
	e.unmount()
}

func (e *LeafRenderObjectElement) RebuildIfNeeded() {
	if !e.dirty || e.lifecycle != LifecycleMounted {
		return
	}
	e.dirty = false
	e.updateRenderObject()
}

func (e *LeafRenderObjectElement) VisitChildren(visitor func(Element) bool) {}

// SingleChildRenderObjectElement hosts a render object with at most one
// element child, reconciled under the unique-child slot sentinel.
type SingleChildRenderObjectElement struct {
	renderElementBase
	child Element
}

// NewSingleChildRenderObjectElement creates an unconfigured single-child
// render element.
func NewSingleChildRenderObjectElement() *SingleChildRenderObjectElement {
	element := &SingleChildRenderObjectElement{}
	element.setSelf(element)
	return element
}

func (e *SingleChildRenderObjectElement) Mount(parent Element, slot any) {
	e.mountRenderObject(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *SingleChildRenderObjectElement) Update(newWidget Widget) {
	assertf(CanUpdate(e.widget, newWidget), "Update with incompatible widget %T", newWidget)
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *SingleChildRenderObjectElement) Unmount() {
	e.unmount()
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *SingleChildRenderObjectElement) RebuildIfNeeded() {
	if !e.dirty || e.lifecycle != LifecycleMounted {
		return
	}
	e.dirty = false
	e.updateRenderObject()
	widget := e.widget.(SingleChildRenderObjectWidget)
	e.child = updateChild(e.child, widget.ChildWidget(), e, e.buildOwner, UniqueChildSlot)
}

func (e *SingleChildRenderObjectElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

func (e *SingleChildRenderObjectElement) insertRenderObjectChild(child layout.RenderObject, slot any) {
	single, ok := e.renderObject.(layout.SingleChildRenderObject)
	if !ok {
		panic(fmt.Sprintf("render object %T does not accept a child", e.renderObject))
	}
	if single.Child() != nil {
		panic(fmt.Sprintf("render object %T already has a child", e.renderObject))
	}
	child.SetParent(e.renderObject)
	single.SetChild(child)
	e.renderObject.MarkNeedsLayout()
}

func (e *SingleChildRenderObjectElement) moveRenderObjectChild(child layout.RenderObject, oldSlot, newSlot any) {
	// Single slot: a move cannot change position.
}

func (e *SingleChildRenderObjectElement) removeRenderObjectChild(child layout.RenderObject, slot any) {
	single := e.renderObject.(layout.SingleChildRenderObject)
	if single.Child() != child {
		panic(fmt.Sprintf("render object %T is not the parent of the removed child", e.renderObject))
	}
	single.SetChild(nil)
	child.SetParent(nil)
	e.renderObject.MarkNeedsLayout()
}

// MultiChildRenderObjectElement hosts a render object with an ordered list
// of element children, reconciled by updateChildren.
type MultiChildRenderObjectElement struct {
	renderElementBase
	children []Element
}

// NewMultiChildRenderObjectElement creates an unconfigured multi-child
// render element.
func NewMultiChildRenderObjectElement() *MultiChildRenderObjectElement {
	element := &MultiChildRenderObjectElement{}
	element.setSelf(element)
	return element
}

func (e *MultiChildRenderObjectElement) Mount(parent Element, slot any) {
	e.mountRenderObject(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *MultiChildRenderObjectElement) Update(newWidget Widget) {
	assertf(CanUpdate(e.widget, newWidget), "Update with incompatible widget %T", newWidget)
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *MultiChildRenderObjectElement) Unmount() {
	e.unmount()
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *MultiChildRenderObjectElement) RebuildIfNeeded() {
	if !e.dirty || e.lifecycle != LifecycleMounted {
		return
	}
	e.dirty = false
	e.updateRenderObject()
	widget := e.widget.(MultiChildRenderObjectWidget)
	e.children = updateChildren(e, e.children, widget.ChildWidgets(), e.buildOwner)
}

func (e *MultiChildRenderObjectElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

func (e *MultiChildRenderObjectElement) insertRenderObjectChild(child layout.RenderObject, slot any) {
	multi, ok := e.renderObject.(layout.MultiChildRenderObject)
	if !ok {
		panic(fmt.Sprintf("render object %T does not accept children", e.renderObject))
	}
	after := previousSiblingRenderObject(slot)
	existing := multi.Children()
	updated := make([]layout.RenderObject, 0, len(existing)+1)
	inserted := false
	if after == nil {
		updated = append(updated, child)
		inserted = true
	}
	for _, sibling := range existing {
		if sibling == child {
			panic(fmt.Sprintf("render object %T inserted twice", child))
		}
		updated = append(updated, sibling)
		if sibling == after {
			updated = append(updated, child)
			inserted = true
		}
	}
	if !inserted {
		updated = append(updated, child)
	}
	child.SetParent(e.renderObject)
	multi.SetChildren(updated)
	e.renderObject.MarkNeedsLayout()
}

func (e *MultiChildRenderObjectElement) moveRenderObjectChild(child layout.RenderObject, oldSlot, newSlot any) {
	multi := e.renderObject.(layout.MultiChildRenderObject)
	after := previousSiblingRenderObject(newSlot)
	existing := multi.Children()
	updated := make([]layout.RenderObject, 0, len(existing))
	if after == nil {
		updated = append(updated, child)
	}
	for _, sibling := range existing {
		if sibling == child {
			continue
		}
		updated = append(updated, sibling)
		if sibling == after {
			updated = append(updated, child)
		}
	}
	multi.SetChildren(updated)
	e.renderObject.MarkNeedsLayout()
}

func (e *MultiChildRenderObjectElement) removeRenderObjectChild(child layout.RenderObject, slot any) {
	multi := e.renderObject.(layout.MultiChildRenderObject)
	existing := multi.Children()
	updated := make([]layout.RenderObject, 0, len(existing))
	found := false
	for _, sibling := range existing {
		if sibling == child {
			found = true
			continue
		}
		updated = append(updated, sibling)
	}
	if !found {
		panic(fmt.Sprintf("render object %T is not a child of %T", child, e.renderObject))
	}
	child.SetParent(nil)
	multi.SetChildren(updated)
	e.renderObject.MarkNeedsLayout()
}

// previousSiblingRenderObject resolves the render object preceding a slot
// in the host's child list, or nil for the head position. A sibling may
// contribute no render object at all (a buildable that built nil, or whose
// first build failed), so the walk keeps following each sibling's own
// PreviousSibling until it finds one.
func previousSiblingRenderObject(slot any) layout.RenderObject {
	indexed, ok := slot.(IndexedSlot)
	if !ok {
		return nil
	}
	for sibling := indexed.PreviousSibling; sibling != nil; {
		if renderObject := renderObjectOf(sibling); renderObject != nil {
			return renderObject
		}
		prev, ok := sibling.Slot().(IndexedSlot)
		if !ok {
			return nil
		}
		sibling = prev.PreviousSibling
	}
	return nil
}
