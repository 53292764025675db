package core

import (
	"sync"
	"testing"
)

func TestControllerBase_AddAndNotify(t *testing.T) {
	var c ControllerBase
	calls := 0

	c.AddListener(func() { calls++ })
	c.NotifyListeners()
	c.NotifyListeners()

	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestControllerBase_Unsubscribe(t *testing.T) {
	var c ControllerBase
	calls := 0

	unsub := c.AddListener(func() { calls++ })
	unsub()
	c.NotifyListeners()

	if calls != 0 {
		t.Errorf("expected 0 calls after unsubscribe, got %d", calls)
	}
	if c.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", c.ListenerCount())
	}
}

func TestControllerBase_NilListener(t *testing.T) {
	var c ControllerBase
	unsub := c.AddListener(nil)
	unsub()

	if c.ListenerCount() != 0 {
		t.Errorf("nil listener should not register, got %d", c.ListenerCount())
	}
}

func TestControllerBase_AddAfterDispose(t *testing.T) {
	var c ControllerBase
	c.Dispose()

	calls := 0
	c.AddListener(func() { calls++ })
	c.NotifyListeners()

	if calls != 0 {
		t.Errorf("listener added after dispose should never fire, got %d calls", calls)
	}
}

func TestControllerBase_ListenerMayUnsubscribeDuringNotify(t *testing.T) {
	var c ControllerBase
	var unsub func()
	calls := 0

	unsub = c.AddListener(func() {
		calls++
		unsub()
	})

	c.NotifyListeners()
	c.NotifyListeners()

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestNotifier_Notify(t *testing.T) {
	n := NewNotifier()
	calls := 0
	n.AddListener(func() { calls++ })

	n.Notify()

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestObservable_SetNotifiesWithValue(t *testing.T) {
	obs := NewObservable(1)
	var got []int
	obs.AddListener(func(v int) { got = append(got, v) })

	obs.Set(2)
	obs.Set(3)

	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("got %v, want [2 3]", got)
	}
	if obs.Value() != 3 {
		t.Errorf("Value() = %d, want 3", obs.Value())
	}
}

func TestObservable_Update(t *testing.T) {
	obs := NewObservable(10)
	obs.Update(func(v int) int { return v + 5 })

	if obs.Value() != 15 {
		t.Errorf("Value() = %d, want 15", obs.Value())
	}
}

func TestObservable_EqualitySkipsNotification(t *testing.T) {
	obs := NewObservableWithEquality(5, func(a, b int) bool { return a == b })
	notifies := 0
	obs.AddListener(func(int) { notifies++ })

	obs.Set(5)
	obs.Set(6)
	obs.Set(6)

	if notifies != 1 {
		t.Errorf("expected 1 notification, got %d", notifies)
	}
}

func TestObservable_Unsubscribe(t *testing.T) {
	obs := NewObservable(0)
	notifies := 0
	unsub := obs.AddListener(func(int) { notifies++ })

	unsub()
	obs.Set(1)

	if notifies != 0 {
		t.Errorf("expected 0 notifications after unsubscribe, got %d", notifies)
	}
}

func TestObservable_ConcurrentSet(t *testing.T) {
	obs := NewObservable(0)
	var mu sync.Mutex
	seen := 0
	obs.AddListener(func(int) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			obs.Set(v)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if seen != 8 {
		t.Errorf("expected 8 notifications, got %d", seen)
	}
}
