package core

import "testing"

type fakeController struct {
	disposed bool
}

func (c *fakeController) Dispose() {
	c.disposed = true
}

func TestUseController_DisposesWithState(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *fakeController {
		return &fakeController{}
	})

	if controller.disposed {
		t.Error("controller should not be disposed before the state is")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("controller should be disposed along with the state")
	}
}

func TestUseListenable_SubscribesAndUnsubscribes(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)

	if notifier.ListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", notifier.ListenerCount())
	}

	base.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseListenable_RebuildsOnNotify(t *testing.T) {
	owner := NewBuildOwner()
	notifier := NewNotifier()
	builds := 0

	mountTestRoot(testStatefulWidget{
		createStateFn: func() State {
			state := &testState{}
			state.buildFn = func(ctx BuildContext) Widget {
				builds++
				return nil
			}
			UseListenable(state, notifier)
			return state
		},
	}, owner)
	builds = 0

	notifier.Notify()
	owner.FlushBuild()

	if builds != 1 {
		t.Errorf("expected 1 rebuild after Notify, got %d", builds)
	}
}

func TestUseObservable_RebuildsOnSet(t *testing.T) {
	owner := NewBuildOwner()
	obs := NewObservable(42)
	var seen []int

	mountTestRoot(testStatefulWidget{
		createStateFn: func() State {
			state := &testState{}
			state.buildFn = func(ctx BuildContext) Widget {
				seen = append(seen, obs.Value())
				return nil
			}
			UseObservable(state, obs)
			return state
		},
	}, owner)

	obs.Set(100)
	owner.FlushBuild()

	if len(seen) != 2 || seen[1] != 100 {
		t.Errorf("seen = %v, want [42 100]", seen)
	}
}

func TestUseObservable_Cleanup(t *testing.T) {
	base := &StateBase{}
	obs := NewObservable(0)

	UseObservable(base, obs)

	if obs.ListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", obs.ListenerCount())
	}

	base.Dispose()

	if obs.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after dispose, got %d", obs.ListenerCount())
	}
	obs.Set(999) // must not panic after cleanup
}

func TestManaged_ValueSetUpdate(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 10)

	if state.Value() != 10 {
		t.Errorf("expected 10, got %d", state.Value())
	}

	state.Set(100)
	if state.Value() != 100 {
		t.Errorf("expected 100 after Set, got %d", state.Value())
	}

	state.Update(func(v int) int { return v * 2 })
	if state.Value() != 200 {
		t.Errorf("expected 200 after Update, got %d", state.Value())
	}
}

func TestManaged_StructType(t *testing.T) {
	type person struct {
		name string
		age  int
	}

	base := &StateBase{}
	state := NewManaged(base, person{name: "alice", age: 30})

	state.Update(func(p person) person {
		p.age++
		return p
	})

	if got := state.Value(); got.name != "alice" || got.age != 31 {
		t.Errorf("unexpected value %+v", got)
	}
}

func TestManaged_TriggersRebuild(t *testing.T) {
	owner := NewBuildOwner()
	var counter *Managed[int]
	builds := 0

	mountTestRoot(testStatefulWidget{
		createStateFn: func() State {
			state := &testState{}
			state.buildFn = func(ctx BuildContext) Widget {
				builds++
				return nil
			}
			counter = NewManaged(state, 0)
			return state
		},
	}, owner)
	builds = 0

	counter.Set(5)
	owner.FlushBuild()

	if builds != 1 {
		t.Errorf("expected 1 rebuild after Set, got %d", builds)
	}
	if counter.Value() != 5 {
		t.Errorf("expected 5, got %d", counter.Value())
	}
}
