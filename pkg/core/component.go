package core

import (
	"github.com/go-weft/weft/pkg/layout"
)

// buildableBase is shared by elements whose widget is defined by what it
// builds rather than by a render object: a single child reconciled from
// the build output, and a dirty flag driving the rebuild cycle.
type buildableBase struct {
	elementBase
	child Element
}

// rebuildWith clears the dirty flag, runs the builder inside the
// containment boundary and reconciles the child with the result. On a
// build failure the previous child subtree stays in place untouched.
func (e *buildableBase) rebuildWith(buildFn func() Widget) {
	if !e.dirty || e.lifecycle != LifecycleMounted {
		return
	}
	e.dirty = false
	built, err := e.safeBuild(buildFn)
	if err != nil {
		return
	}
	e.child = updateChild(e.child, built, e.self, e.buildOwner, e.childSlot())
}

func (e *buildableBase) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// DetachRenderObject forwards to the child: buildable elements own no
// render object themselves.
func (e *buildableBase) DetachRenderObject() {
	if e.child != nil {
		e.child.DetachRenderObject()
	}
}

// UpdateSlot moves this element and propagates the new slot down to the
// first render element on the path.
func (e *buildableBase) UpdateSlot(newSlot any) {
	e.slot = newSlot
	if e.child != nil {
		e.child.UpdateSlot(newSlot)
	}
}

// RenderObject returns the render object of the first render descendant.
func (e *buildableBase) RenderObject() layout.RenderObject {
	return renderObjectOf(e.child)
}

func (e *buildableBase) unmountChild() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	buildableBase
}

// NewStatelessElement creates an unconfigured StatelessElement. The widget
// and build owner are injected by Inflate before Mount.
func NewStatelessElement() *StatelessElement {
	element := &StatelessElement{}
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

// Update rebinds the builder to the new widget and rebuilds immediately: a
// stateless widget has no identity work to preserve, so updating always
// produces fresh output.
func (e *StatelessElement) Update(newWidget Widget) {
	assertf(CanUpdate(e.widget, newWidget), "Update with incompatible widget %T", newWidget)
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Unmount() {
	e.unmount()
	e.unmountChild()
}

func (e *StatelessElement) RebuildIfNeeded() {
	widget, _ := e.widget.(StatelessWidget)
	e.rebuildWith(func() Widget {
		return widget.Build(e)
	})
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	buildableBase
	state State
}

// NewStatefulElement creates an unconfigured StatefulElement. The widget
// and build owner are injected by Inflate before Mount.
func NewStatefulElement() *StatefulElement {
	element := &StatefulElement{}
	element.setSelf(element)
	return element
}

// State returns the state object owned by this element.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	} else if setter, ok := e.state.(interface{ setElement(*StatefulElement) }); ok {
		setter.setElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

// Update swaps the state's widget configuration, runs the config-changed
// hook and rebuilds. The state object itself persists across the swap.
func (e *StatefulElement) Update(newWidget Widget) {
	assertf(CanUpdate(e.widget, newWidget), "Update with incompatible widget %T", newWidget)
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Unmount() {
	e.unmount()
	e.unmountChild()
	if e.state != nil {
		e.state.Dispose()
		e.state = nil
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	state := e.state
	e.rebuildWith(func() Widget {
		return state.Build(e)
	})
}
