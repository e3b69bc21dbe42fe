package house

import "errors"

// Domain errors for the house package.
//
// Both represent precondition violations, not transient faults; they are
// carried as values and checked with errors.Is():
//
//	if errors.Is(err, house.ErrNoSuchRoom) {
//	    // handle unknown room
//	}
//
// The offending room or device name is attached by the operation that
// returns the error.
var (
	// ErrNoSuchRoom is returned when a room has no entry in the registry.
	ErrNoSuchRoom = errors.New("house: no such room")

	// ErrDuplicateDevice is returned when adding a device whose name
	// already exists in the target room.
	ErrDuplicateDevice = errors.New("house: room already contains device")
)
