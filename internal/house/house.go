package house

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hearthward/hearth-core/internal/device"
)

// Logger defines the logging interface used by the House.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// House is the registry aggregate owning the room-indexed device index.
//
// Devices in the room index are shared handles: the same handle may also
// live in a per-variant index and in the caller's hands, and a Poll
// through any of them refreshes the one underlying reading.
//
// All public methods are thread-safe.
type House struct {
	id   string
	name string
	slug string

	mu           sync.RWMutex
	deviceByRoom map[string]map[string]device.Device

	// Per-variant bookkeeping: every device of the variant ever added,
	// independent of room placement, pruned only by RemoveDevice.
	sockets     *device.Index[*device.Socket]
	thermostats *device.Index[*device.Thermostat]

	logger Logger
}

// New creates an empty house with the given display name.
func New(name string) *House {
	return &House{
		id:           GenerateID(),
		name:         name,
		slug:         GenerateSlug(name),
		deviceByRoom: make(map[string]map[string]device.Device),
		sockets:      device.NewIndex[*device.Socket](),
		thermostats:  device.NewIndex[*device.Thermostat](),
		logger:       noopLogger{},
	}
}

// SetLogger sets the logger for the house.
func (h *House) SetLogger(logger Logger) {
	h.logger = logger
}

// ID returns the house's generated unique identifier.
func (h *House) ID() string {
	return h.id
}

// Name returns the house's immutable display identity.
func (h *House) Name() string {
	return h.name
}

// Slug returns the URL-safe slug derived from the house name.
func (h *House) Slug() string {
	return h.slug
}

// Rooms returns the names of rooms that currently have an entry,
// sorted for deterministic output.
func (h *House) Rooms() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rooms := make([]string, 0, len(h.deviceByRoom))
	for room := range h.deviceByRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// Devices returns the names of the devices registered in room, sorted.
// Returns ErrNoSuchRoom carrying the room name if the room has no entry.
// A room emptied by RemoveDevice still has an entry and yields an empty
// list, not an error.
func (h *House) Devices(room string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	devices, ok := h.deviceByRoom[room]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchRoom, room)
	}

	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// AddDevice registers dev in room, creating the room on first use.
//
// Fails with ErrDuplicateDevice carrying the device name if the room
// already holds a device with the same name, and with ErrInvalidName if
// the name is unusable as an identity. On failure the registry is left
// unchanged; validation fully precedes mutation.
func (h *House) AddDevice(room string, dev device.Device) error {
	if err := device.ValidateName(dev.Name()); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// An absent room means zero devices at this step, not an error.
	if _, exists := h.deviceByRoom[room][dev.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDevice, dev.Name())
	}

	if h.deviceByRoom[room] == nil {
		h.deviceByRoom[room] = make(map[string]device.Device)
	}
	h.deviceByRoom[room][dev.Name()] = dev
	h.indexLocked(dev)

	h.logger.Info("device added", "room", room, "device", dev.Name())
	return nil
}

// RemoveRoom deletes the room's entry from the registry. Absence of the
// room is not an error; the call is an idempotent no-op.
//
// The per-variant indices are deliberately not pruned: they keep every
// device ever registered, including ones orphaned here. Only RemoveDevice
// prunes them.
func (h *House) RemoveRoom(room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.deviceByRoom[room]; !ok {
		return
	}
	delete(h.deviceByRoom, room)
	h.logger.Info("room removed", "room", room)
}

// RemoveDevice removes the entry keyed by dev's name from room, if both
// exist, and unconditionally removes every handle identity-equal to dev
// from the per-variant indices. A missing room or device is a no-op,
// not an error.
func (h *House) RemoveDevice(room string, dev device.Device) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if devices, ok := h.deviceByRoom[room]; ok {
		if _, ok := devices[dev.Name()]; ok {
			delete(devices, dev.Name())
			h.logger.Info("device removed", "room", room, "device", dev.Name())
		}
	}
	h.unindexLocked(dev)
}

// PollAll refreshes the reading of every device in every room. Each poll
// is independent; no ordering is guaranteed across rooms or devices.
func (h *House) PollAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	polled := 0
	for _, devices := range h.deviceByRoom {
		for _, dev := range devices {
			dev.Poll()
			polled++
		}
	}
	h.logger.Debug("poll complete", "devices", polled)
}

// Sockets returns the names of every socket ever registered, including
// orphaned ones, in registration order.
func (h *House) Sockets() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sockets.Names()
}

// Thermostats returns the names of every thermostat ever registered,
// including orphaned ones, in registration order.
func (h *House) Thermostats() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.thermostats.Names()
}

// Stats returns registry statistics for monitoring.
type Stats struct {
	Rooms              int
	Devices            int
	DevicesByRoom      map[string]int
	IndexedSockets     int
	IndexedThermostats int
}

// GetStats returns current registry statistics.
func (h *House) GetStats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := Stats{
		Rooms:              len(h.deviceByRoom),
		DevicesByRoom:      make(map[string]int, len(h.deviceByRoom)),
		IndexedSockets:     h.sockets.Len(),
		IndexedThermostats: h.thermostats.Len(),
	}
	for room, devices := range h.deviceByRoom {
		stats.DevicesByRoom[room] = len(devices)
		stats.Devices += len(devices)
	}
	return stats
}

// String renders the house name followed by each room and the multi-line
// description of each of its devices. Rooms and devices are rendered in
// sorted name order so the output is deterministic.
func (h *House) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "House %q:\n", h.name)

	rooms := make([]string, 0, len(h.deviceByRoom))
	for room := range h.deviceByRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	for _, room := range rooms {
		b.WriteString(room)
		b.WriteByte('\n')

		devices := h.deviceByRoom[room]
		names := make([]string, 0, len(devices))
		for name := range devices {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			b.WriteString(devices[name].String())
		}
	}
	return b.String()
}

// indexLocked registers dev in the index matching its variant.
// Callers must hold h.mu.
func (h *House) indexLocked(dev device.Device) {
	switch d := dev.(type) {
	case *device.Socket:
		h.sockets.Add(d)
	case *device.Thermostat:
		h.thermostats.Add(d)
	default:
		// Unknown variants live only in the room index.
		h.logger.Debug("no variant index for device", "device", dev.Name())
	}
}

// unindexLocked removes every identity-equal handle of dev from the
// index matching its variant. Callers must hold h.mu.
func (h *House) unindexLocked(dev device.Device) {
	switch d := dev.(type) {
	case *device.Socket:
		h.sockets.Remove(d)
	case *device.Thermostat:
		h.thermostats.Remove(d)
	}
}
