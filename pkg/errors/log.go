package errors

import (
	"fmt"
	"os"
	"strings"
)

const reportRule = "════════════════════════════════════════════════════════════"

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a FrameworkError to stderr.
func (h *LogHandler) HandleError(err *FrameworkError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[weft error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[weft panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[weft panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleBoundaryError prints a delimited report for a contained build
// failure. The surrounding subtree stays in its last-good state, so the
// report is the only visible trace of the failure.
func (h *LogHandler) HandleBoundaryError(err *BoundaryError) {
	if err == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", reportRule)
	fmt.Fprintf(&sb, "FAILURE CAUGHT DURING %s\n", strings.ToUpper(err.Phase))
	fmt.Fprintf(&sb, "widget:  %s\n", err.Widget)
	fmt.Fprintf(&sb, "element: %s\n", err.Element)
	if err.Recovered != nil {
		fmt.Fprintf(&sb, "panic:   %v\n", err.Recovered)
	} else if err.Err != nil {
		fmt.Fprintf(&sb, "error:   %v\n", err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(&sb, "stack:\n%s", err.StackTrace)
	}
	fmt.Fprintf(&sb, "%s\n", reportRule)
	os.Stderr.WriteString(sb.String())
}
