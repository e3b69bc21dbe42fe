package device

// Index is a per-variant bookkeeping collection of shared device handles.
//
// It mirrors every device of one variant ever registered with a house,
// independent of room placement. It is a denormalised convenience list:
// Add enforces no uniqueness, and Remove matches handles by identity
// (pointer equality), never by name, so removing one device does not
// disturb an unrelated device that happens to share its name.
//
// An Index is not safe for concurrent use on its own; the owning house
// serialises access.
type Index[D interface {
	Device
	comparable
}] struct {
	devices []D
}

// NewIndex creates an empty index.
func NewIndex[D interface {
	Device
	comparable
}]() *Index[D] {
	return &Index[D]{}
}

// Add appends a shared handle to the index.
func (ix *Index[D]) Add(dev D) {
	ix.devices = append(ix.devices, dev)
}

// Remove deletes every entry identity-equal to dev.
func (ix *Index[D]) Remove(dev D) {
	kept := ix.devices[:0]
	for _, d := range ix.devices {
		if d != dev {
			kept = append(kept, d)
		}
	}
	// Release dropped handles so they do not pin the removed device.
	for i := len(kept); i < len(ix.devices); i++ {
		var zero D
		ix.devices[i] = zero
	}
	ix.devices = kept
}

// Names returns the identity of every indexed device, in insertion order.
func (ix *Index[D]) Names() []string {
	names := make([]string, 0, len(ix.devices))
	for _, d := range ix.devices {
		names = append(names, d.Name())
	}
	return names
}

// Len returns the number of indexed handles.
func (ix *Index[D]) Len() int {
	return len(ix.devices)
}
