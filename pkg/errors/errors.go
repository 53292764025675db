// Package errors provides structured error handling for the weft framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindRender indicates a render-tree bridging error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindScene indicates a scene description parsing failure.
	KindScene
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindScene:
		return "scene"
	default:
		return "unknown"
	}
}

// FrameworkError represents a structured error in the weft framework.
type FrameworkError struct {
	// Op is the operation that failed (e.g., "core.FlushBuild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrameworkError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameworkError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.FlushBuild").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BoundaryError records a failure contained at a build boundary. The
// element that caught it keeps its previous child subtree in place, so a
// BoundaryError is a report, not a control-flow value.
type BoundaryError struct {
	// Widget is the type name of the widget whose build failed.
	Widget string
	// Element is the element type hosting the widget.
	Element string
	// Phase names the lifecycle phase that failed (currently "build").
	Phase string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *BoundaryError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.%s: %v", e.Widget, e.Phase, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.%s: %v", e.Widget, e.Phase, e.Err)
	}
	return fmt.Sprintf("unknown failure in %s.%s", e.Widget, e.Phase)
}

func (e *BoundaryError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the weft framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FrameworkError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBoundaryError is called when a widget build fails.
	HandleBoundaryError(err *BoundaryError)
}
