package ecc

import "errors"

var (
	// ErrIdentityWitness is returned when the identity is witnessed where a
	// non-identity point is required. It is distinct from backend synthesis
	// errors so callers can tell an invalid input from a broken backend.
	ErrIdentityWitness = errors.New("ecc: cannot witness the identity as a non-identity point")

	// ErrWindowCount is returned when a scalar's window decomposition does
	// not match the window count of the fixed-base descriptor.
	ErrWindowCount = errors.New("ecc: window count mismatch between scalar and fixed base")
)
