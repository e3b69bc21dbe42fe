package device

import "fmt"

// Device is the contract implemented by every device variant.
//
// Name is the device's immutable identity and is unique within a room.
// Poll resamples the mutable reading from the variant's sampling domain;
// the mutation is visible to every holder of the same handle.
// String (via fmt.Stringer) renders a multi-line human-readable snapshot
// of the current identity and state.
type Device interface {
	fmt.Stringer

	// Name returns the device's immutable identity. Never fails.
	Name() string

	// Poll replaces the device's reading with a freshly sampled value
	// from its declared domain. Never fails.
	Poll()
}
