package core

import "fmt"

// DebugMode gates the framework's lifecycle assertions. When true,
// contract violations by surrounding framework code (mounting twice,
// updating a defunct element, inserting into an occupied render slot)
// panic with a description. When false, the checks are skipped; such
// violations are undefined behavior.
var DebugMode = true

// SetDebugMode enables or disables debug assertions for the framework.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// assertf panics with a formatted message when the condition fails and
// DebugMode is on.
func assertf(condition bool, format string, args ...any) {
	if DebugMode && !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
