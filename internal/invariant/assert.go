// Package invariant provides a single fatal-assertion helper shared by
// seq, ett, lct, and core2c.
//
// Algorithmic invariant violations (a disconnected disconnect(), a
// missing half-edge back-reference, a drifted counter) are
// implementation bugs, not recoverable runtime errors: the process
// aborts with a diagnostic. Assertf is compiled into every build, not
// gated behind a debug tag, since these checks are load-bearing for
// reproducing stress-test failures rather than optional scaffolding.
package invariant

import "fmt"

// Assertf panics with a formatted diagnostic when cond is false.
//
// Complexity: O(1) when cond holds (the common case); formatting only
// happens on the failing path.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Sprintf("invariant violation: "+format, args...))
}
