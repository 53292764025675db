package core

import "sync"

// Listenable is anything that can notify listeners of changes. AddListener
// returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable is anything that must release resources when no longer used.
type Disposable interface {
	Dispose()
}

// ControllerBase provides listener management for long-lived controllers.
// Embed it and call NotifyListeners whenever observable state changes.
type ControllerBase struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
	disposed  bool
}

// AddListener registers a change listener and returns its unsubscribe
// function. Listeners added after disposal are never called.
func (c *ControllerBase) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// NotifyListeners invokes every registered listener.
func (c *ControllerBase) NotifyListeners() {
	c.mu.Lock()
	snapshot := make([]func(), 0, len(c.listeners))
	for _, listener := range c.listeners {
		snapshot = append(snapshot, listener)
	}
	c.mu.Unlock()
	for _, listener := range snapshot {
		listener()
	}
}

// ListenerCount returns the number of registered listeners.
func (c *ControllerBase) ListenerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// Dispose drops all listeners. Further notifications are no-ops.
func (c *ControllerBase) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.listeners = nil
}

// Notifier broadcasts events without carrying a value.
type Notifier struct {
	ControllerBase
}

// NewNotifier creates a Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify invokes all registered listeners.
func (n *Notifier) Notify() {
	n.NotifyListeners()
}

// Observable holds a value and notifies listeners when it changes.
// Observable is thread-safe and can be shared across goroutines.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	listeners map[int]func(T)
	nextID    int
	equals    func(a, b T) bool
}

// NewObservable creates an observable with an initial value. Every Set
// notifies listeners.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable that skips notification
// when the equality function reports the new value equal to the old one.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equals: equals}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set updates the value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	snapshot := make([]func(T), 0, len(o.listeners))
	for _, listener := range o.listeners {
		snapshot = append(snapshot, listener)
	}
	o.mu.Unlock()
	for _, listener := range snapshot {
		listener(value)
	}
}

// Update applies a transformation to the current value.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	next := transform(o.value)
	o.mu.Unlock()
	o.Set(next)
}

// AddListener registers a change listener and returns its unsubscribe
// function.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	if listener == nil {
		return func() {}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = listener
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
