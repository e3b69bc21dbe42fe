// Package house provides the room-indexed device registry for Hearth Core.
//
// The House is the aggregate that owns the mapping from room name to the
// devices registered in that room, plus one bookkeeping index per device
// variant. It is the sole mutator of the room index; devices mutate only
// their own reading, during Poll.
//
// # Key Types
//
//   - House: the registry aggregate
//   - Stats: registry statistics for monitoring
//   - Logger: the logging interface the registry emits through
//
// # Usage
//
//	h := house.New("The Rising Sun")
//	h.SetLogger(log)
//
//	if err := h.AddDevice("bedroom", device.NewSocket("lamp")); err != nil {
//	    return err
//	}
//
//	names, err := h.Devices("bedroom") // ErrNoSuchRoom for unknown rooms
//	h.PollAll()                        // refresh every reading
//	fmt.Print(h)                       // rendered description
//
// # Semantics
//
// Rooms are created implicitly by the first AddDevice into them and
// destroyed only by RemoveRoom; a room emptied by RemoveDevice continues
// to exist with zero devices. Removal operations treat a missing target
// as a no-op, while the Devices lookup reports a missing room as
// ErrNoSuchRoom.
//
// The per-variant indices record every device ever registered, including
// devices orphaned by RemoveRoom. RemoveDevice is the only operation
// that prunes them, and it matches handles by identity, not by name.
//
// # Thread Safety
//
// All House methods are safe for concurrent use; the room index is
// guarded by a read-write mutex and each device guards its own reading.
package house
