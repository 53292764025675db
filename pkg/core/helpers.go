package core

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Label{Text: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// InheritedBase provides default CreateElement and Key implementations for
// inherited widgets. Embed it alongside a Child field and implement
// [InheritedWidget.ChildWidget] and [InheritedWidget.UpdateShouldNotify].
type InheritedBase struct{}

// CreateElement returns a new InheritedElement.
func (InheritedBase) CreateElement() Element { return NewInheritedElement() }

// Key returns nil (no key).
func (InheritedBase) Key() any { return nil }

// LeafRenderObjectBase provides default CreateElement and Key
// implementations for render object widgets without children.
type LeafRenderObjectBase struct{}

// CreateElement returns a new LeafRenderObjectElement.
func (LeafRenderObjectBase) CreateElement() Element { return NewLeafRenderObjectElement() }

// Key returns nil (no key).
func (LeafRenderObjectBase) Key() any { return nil }

// SingleChildRenderObjectBase provides default CreateElement and Key
// implementations for render object widgets with one child. Embed it
// alongside a Child field and implement ChildWidget.
type SingleChildRenderObjectBase struct{}

// CreateElement returns a new SingleChildRenderObjectElement.
func (SingleChildRenderObjectBase) CreateElement() Element {
	return NewSingleChildRenderObjectElement()
}

// Key returns nil (no key).
func (SingleChildRenderObjectBase) Key() any { return nil }

// MultiChildRenderObjectBase provides default CreateElement and Key
// implementations for render object widgets with an ordered child list.
// Embed it alongside a Children field and implement ChildWidgets.
type MultiChildRenderObjectBase struct{}

// CreateElement returns a new MultiChildRenderObjectElement.
func (MultiChildRenderObjectBase) CreateElement() Element {
	return NewMultiChildRenderObjectElement()
}

// Key returns nil (no key).
func (MultiChildRenderObjectBase) Key() any { return nil }

// Stateful creates an inline stateful widget using closures. Use it for
// quick, self-contained fragments that don't need lifecycle hooks or
// StateBase features:
//
//	widget := core.Stateful(
//	    func() int { return 0 },
//	    func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
//	        return widgets.Label{Text: fmt.Sprintf("Count: %d", count)}
//	    },
//	)
//
// The generic parameter is the state type. setState takes a function that
// transforms the current state to a new state.
func Stateful[S any](
	init func() S,
	build func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &inlineStatefulWidget[S]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineStatefulWidget[S any] struct {
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *inlineStatefulWidget[S]) CreateElement() Element {
	return NewStatefulElement()
}

func (w *inlineStatefulWidget[S]) Key() any { return nil }

func (w *inlineStatefulWidget[S]) CreateState() State {
	return &inlineStatefulState[S]{
		initFn:  w.initFn,
		buildFn: w.buildFn,
	}
}

type inlineStatefulState[S any] struct {
	StateBase
	value   S
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (s *inlineStatefulState[S]) InitState() {
	s.value = s.initFn()
}

func (s *inlineStatefulState[S]) Build(ctx BuildContext) Widget {
	return s.buildFn(s.value, ctx, func(update func(S) S) {
		s.SetState(func() {
			s.value = update(s.value)
		})
	})
}
