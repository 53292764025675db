package core

import (
	"reflect"
	"testing"
)

// providerReader builds nothing but records every value it observes.
type providerReader struct {
	seen   *[]int
	builds *int
}

func (w providerReader) CreateElement() Element { return NewStatelessElement() }
func (w providerReader) Key() any               { return nil }

func (w providerReader) Build(ctx BuildContext) Widget {
	if w.builds != nil {
		*w.builds++
	}
	if value, ok := ProviderOf[int](ctx); ok {
		*w.seen = append(*w.seen, value)
	}
	return nil
}

func TestProviderOf_ReturnsValue(t *testing.T) {
	var seen []int
	owner := NewBuildOwner()
	mountTestRoot(InheritedProvider[int]{
		Value: 7,
		Child: providerReader{seen: &seen},
	}, owner)

	if len(seen) != 1 || seen[0] != 7 {
		t.Errorf("seen = %v, want [7]", seen)
	}
}

func TestProviderOf_MissingProvider(t *testing.T) {
	owner := NewBuildOwner()
	var got int
	var ok bool
	mountTestRoot(testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			got, ok = ProviderOf[int](ctx)
			return nil
		},
	}, owner)

	if ok || got != 0 {
		t.Errorf("ProviderOf with no provider = (%d, %v), want (0, false)", got, ok)
	}
}

func TestProviderOf_NearestWins(t *testing.T) {
	var seen []int
	owner := NewBuildOwner()
	mountTestRoot(InheritedProvider[int]{
		Value: 1,
		Child: InheritedProvider[int]{
			Value: 2,
			Child: providerReader{seen: &seen},
		},
	}, owner)

	if len(seen) != 1 || seen[0] != 2 {
		t.Errorf("seen = %v, want [2] (nearest provider)", seen)
	}
}

func TestInheritedUpdate_NotifiesDependents(t *testing.T) {
	var seen []int
	builds := 0
	owner := NewBuildOwner()
	reader := providerReader{seen: &seen, builds: &builds}
	root := mountTestRoot(InheritedProvider[int]{Value: 1, Child: reader}, owner)

	root.Update(InheritedProvider[int]{Value: 2, Child: reader})
	owner.FlushBuild()

	if len(seen) != 2 || seen[1] != 2 {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
}

func TestInheritedUpdate_SameValue_NoNotify(t *testing.T) {
	var seen []int
	builds := 0
	owner := NewBuildOwner()
	reader := providerReader{seen: &seen, builds: &builds}
	root := mountTestRoot(InheritedProvider[int]{Value: 5, Child: reader}, owner)
	buildsAfterMount := builds

	root.Update(InheritedProvider[int]{Value: 5, Child: reader})
	owner.FlushBuild()

	if builds != buildsAfterMount {
		t.Errorf("dependent rebuilt %d extra times on an unchanged value", builds-buildsAfterMount)
	}
}

// dependencyTrackingState counts DidChangeDependencies calls.
type dependencyTrackingWidget struct {
	calls *int
}

func (w dependencyTrackingWidget) CreateElement() Element { return NewStatefulElement() }
func (w dependencyTrackingWidget) Key() any               { return nil }
func (w dependencyTrackingWidget) CreateState() State {
	return &dependencyTrackingState{calls: w.calls}
}

type dependencyTrackingState struct {
	StateBase
	calls *int
}

func (s *dependencyTrackingState) Build(ctx BuildContext) Widget {
	ProviderOf[string](ctx)
	return nil
}

func (s *dependencyTrackingState) DidChangeDependencies() {
	*s.calls++
}

func TestInheritedUpdate_CallsDidChangeDependencies(t *testing.T) {
	calls := 0
	owner := NewBuildOwner()
	root := mountTestRoot(InheritedProvider[string]{
		Value: "a",
		Child: dependencyTrackingWidget{calls: &calls},
	}, owner)

	root.Update(InheritedProvider[string]{
		Value: "b",
		Child: dependencyTrackingWidget{calls: &calls},
	})
	owner.FlushBuild()

	if calls != 1 {
		t.Errorf("DidChangeDependencies called %d times, want 1", calls)
	}
}

// themeWidget is an aspect-aware inherited widget with two independent
// channels.
type themeWidget struct {
	InheritedBase
	color string
	font  string
	child Widget
}

func (w themeWidget) ChildWidget() Widget { return w.child }

func (w themeWidget) UpdateShouldNotify(old InheritedWidget) bool {
	prev := old.(themeWidget)
	return prev.color != w.color || prev.font != w.font
}

func (w themeWidget) UpdateShouldNotifyDependent(old InheritedWidget, aspects map[any]struct{}) bool {
	prev := old.(themeWidget)
	if _, ok := aspects["color"]; ok && prev.color != w.color {
		return true
	}
	if _, ok := aspects["font"]; ok && prev.font != w.font {
		return true
	}
	return false
}

// aspectReader depends only on the named aspect of themeWidget.
type aspectReader struct {
	aspect string
	builds *int
}

func (w aspectReader) CreateElement() Element { return NewStatelessElement() }
func (w aspectReader) Key() any               { return w.aspect }

func (w aspectReader) Build(ctx BuildContext) Widget {
	*w.builds++
	ctx.DependOnInherited(reflect.TypeOf((*themeWidget)(nil)).Elem(), w.aspect)
	return nil
}

func TestAspectAware_OnlyMatchingAspectNotified(t *testing.T) {
	colorBuilds, fontBuilds := 0, 0
	owner := NewBuildOwner()

	child := testMultiChildWidget{childWidgets: []Widget{
		aspectReader{aspect: "color", builds: &colorBuilds},
		aspectReader{aspect: "font", builds: &fontBuilds},
	}}
	root := mountTestRoot(themeWidget{color: "red", font: "mono", child: child}, owner)
	colorBuilds, fontBuilds = 0, 0

	// Only the color changes: the font-aspect dependent stays clean.
	root.Update(themeWidget{color: "blue", font: "mono", child: child})
	owner.FlushBuild()

	if colorBuilds != 1 {
		t.Errorf("color dependent rebuilt %d times, want 1", colorBuilds)
	}
	if fontBuilds != 0 {
		t.Errorf("font dependent rebuilt %d times, want 0", fontBuilds)
	}
}

func TestAspectAware_NilAspect_AlwaysNotified(t *testing.T) {
	builds := 0
	owner := NewBuildOwner()

	allReader := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			builds++
			ctx.DependOnInherited(reflect.TypeOf((*themeWidget)(nil)).Elem(), nil)
			return nil
		},
	}
	root := mountTestRoot(themeWidget{color: "red", font: "mono", child: allReader}, owner)
	builds = 0

	root.Update(themeWidget{color: "red", font: "serif", child: allReader})
	owner.FlushBuild()

	if builds != 1 {
		t.Errorf("depends-on-all dependent rebuilt %d times, want 1", builds)
	}
}

func TestRemoveDependent(t *testing.T) {
	builds := 0
	owner := NewBuildOwner()
	reader := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			builds++
			ctx.DependOnInherited(reflect.TypeOf((*themeWidget)(nil)).Elem(), nil)
			return nil
		},
	}
	root := mountTestRoot(themeWidget{color: "red", child: reader}, owner).(*InheritedElement)

	dependent := root.child
	root.RemoveDependent(dependent)
	builds = 0

	root.Update(themeWidget{color: "green", child: reader})
	owner.FlushBuild()

	// The child still rebuilds through normal reconciliation (its widget
	// value changed), but not through dependency notification.
	if builds > 1 {
		t.Errorf("removed dependent rebuilt %d times, want at most 1", builds)
	}
}

func TestNotifyDependent_SkipsDefunct(t *testing.T) {
	owner := NewBuildOwner()
	reader := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			ctx.DependOnInherited(reflect.TypeOf((*themeWidget)(nil)).Elem(), nil)
			return nil
		},
	}
	root := mountTestRoot(themeWidget{color: "red", child: reader}, owner).(*InheritedElement)

	dependent := root.child
	dependent.DetachRenderObject()
	dependent.Unmount()
	root.child = nil

	// Notification must skip the defunct dependent rather than panic.
	root.Update(themeWidget{color: "green", child: reader})
}
