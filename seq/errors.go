package seq

import "errors"

// Sentinel errors for seq operations. Handle misuse (an out-of-range
// or foreign handle) is a caller-contract violation; these errors exist
// for APIs that can reasonably report it rather than panic (nothing in
// this package currently returns error — reserved for future
// boundary-checked constructors), kept here so the package follows the
// teacher's per-package errors.go convention even though the hot-path
// Container methods prefer invariant.Assertf.
var (
	// ErrForeignHandle indicates a handle does not belong to the
	// sequence instance it was passed to.
	ErrForeignHandle = errors.New("seq: handle does not belong to this container")
)
