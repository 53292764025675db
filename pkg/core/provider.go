package core

import "reflect"

// InheritedProvider exposes a single value to descendant widgets without
// implementing InheritedWidget by hand:
//
//	core.InheritedProvider[*Session]{
//	    Value: session,
//	    Child: AppRoot{},
//	}
//
// Descendants read it back with [ProviderOf].
type InheritedProvider[T any] struct {
	InheritedBase
	Value T
	Child Widget
}

// ChildWidget returns the wrapped subtree.
func (p InheritedProvider[T]) ChildWidget() Widget { return p.Child }

// UpdateShouldNotify reports whether the provided value changed. Values of
// non-comparable dynamic types always notify.
func (p InheritedProvider[T]) UpdateShouldNotify(old InheritedWidget) bool {
	previous, ok := old.(InheritedProvider[T])
	if !ok {
		return true
	}
	return !sameValue(any(previous.Value), any(p.Value))
}

// ProviderOf returns the nearest provided value of type T above the
// context, registering the context as a dependent. The second result is
// false when no provider of T is in scope.
func ProviderOf[T any](ctx BuildContext) (T, bool) {
	var zero T
	providerType := reflect.TypeOf(InheritedProvider[T]{})
	widget := ctx.DependOnInherited(providerType, nil)
	if widget == nil {
		return zero, false
	}
	provider, ok := widget.(InheritedProvider[T])
	if !ok {
		return zero, false
	}
	return provider.Value, true
}
