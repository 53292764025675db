package core

import (
	"reflect"
)

// dependOnAllAspects is a sentinel indicating a dependent cares about all
// changes, not just specific aspects.
var dependOnAllAspects = &struct{}{}

// InheritedElement hosts an [InheritedWidget] and tracks the descendants
// that depend on it.
//
// When a descendant calls [BuildContext.DependOnInherited], it registers
// as a dependent of this element. When the widget is updated and
// [InheritedWidget.UpdateShouldNotify] returns true, registered dependents
// are notified and scheduled for rebuild.
//
// Dependents may register with aspects for granular tracking. Aspect sets
// only grow during an element's lifetime; a stale aspect causes extra
// rebuilds, never missed ones.
type InheritedElement struct {
	buildableBase
	dependents map[Element]map[any]struct{}
}

// NewInheritedElement creates an unconfigured InheritedElement.
func NewInheritedElement() *InheritedElement {
	element := &InheritedElement{
		dependents: make(map[Element]map[any]struct{}),
	}
	element.setSelf(element)
	return element
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Update(newWidget Widget) {
	assertf(CanUpdate(e.widget, newWidget), "Update with incompatible widget %T", newWidget)
	oldWidget := e.widget.(InheritedWidget)
	e.widget = newWidget
	newInherited := newWidget.(InheritedWidget)

	// UpdateShouldNotify is the coarse gate; aspects refine per dependent.
	if newInherited.UpdateShouldNotify(oldWidget) {
		aspectAware, hasAspects := newInherited.(AspectAwareInheritedWidget)
		for dependent, aspects := range e.dependents {
			if !hasAspects {
				notifyDependent(dependent)
				continue
			}
			if _, dependsOnAll := aspects[dependOnAllAspects]; dependsOnAll {
				notifyDependent(dependent)
				continue
			}
			if len(aspects) == 0 || aspectAware.UpdateShouldNotifyDependent(oldWidget, aspects) {
				notifyDependent(dependent)
			}
		}
	}

	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Unmount() {
	e.unmount()
	e.unmountChild()
	e.dependents = nil
}

func (e *InheritedElement) RebuildIfNeeded() {
	inherited, _ := e.widget.(InheritedWidget)
	e.rebuildWith(func() Widget {
		return inherited.ChildWidget()
	})
}

// AddDependent registers an element as depending on this inherited widget.
// A nil aspect registers the depends-on-all sentinel.
func (e *InheritedElement) AddDependent(dependent Element, aspect any) {
	if e.dependents == nil {
		e.dependents = make(map[Element]map[any]struct{})
	}

	aspects := e.dependents[dependent]
	if aspects == nil {
		aspects = make(map[any]struct{})
		e.dependents[dependent] = aspects
	}

	if aspect != nil {
		aspects[aspect] = struct{}{}
	} else {
		aspects[dependOnAllAspects] = struct{}{}
	}
}

// RemoveDependent unregisters an element as depending on this inherited
// widget.
func (e *InheritedElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

// notifyDependent triggers DidChangeDependencies on stateful dependents
// and schedules the dependent for rebuild.
func notifyDependent(element Element) {
	if element.Lifecycle() != LifecycleMounted {
		return
	}
	if stateful, ok := element.(*StatefulElement); ok {
		if stateful.state != nil {
			stateful.state.DidChangeDependencies()
		}
		stateful.MarkNeedsBuild()
		return
	}
	element.MarkNeedsBuild()
}

// dependOnInheritedImpl walks up the element tree to the nearest
// InheritedElement whose widget matches the requested type, registers the
// dependency and returns the widget.
func dependOnInheritedImpl(element Element, inheritedType reflect.Type, aspect any) any {
	inherited := findInheritedAncestor(element, inheritedType)
	if inherited == nil {
		return nil
	}
	inherited.AddDependent(element, aspect)
	return inherited.widget
}

// dependOnInheritedWithAspects registers multiple aspects in a single
// tree walk.
func dependOnInheritedWithAspects(element Element, inheritedType reflect.Type, aspects ...any) any {
	inherited := findInheritedAncestor(element, inheritedType)
	if inherited == nil {
		return nil
	}
	for _, aspect := range aspects {
		inherited.AddDependent(element, aspect)
	}
	return inherited.widget
}

func findInheritedAncestor(element Element, inheritedType reflect.Type) *InheritedElement {
	var current Element
	if base, ok := element.(interface{ parentElement() Element }); ok {
		current = base.parentElement()
	}

	for current != nil {
		if inherited, ok := current.(*InheritedElement); ok {
			widgetType := reflect.TypeOf(inherited.widget)
			if widgetType == inheritedType ||
				(widgetType.Kind() == reflect.Pointer && widgetType.Elem() == inheritedType) {
				return inherited
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}
