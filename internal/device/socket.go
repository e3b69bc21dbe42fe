package device

import (
	"fmt"
	"sync"
)

// Voltage sampling domain for powered sockets, in volts.
const (
	SocketVoltageMin = 0.0
	SocketVoltageMax = 380.0
)

// Socket is a powered socket that reports its supply voltage.
//
// The name is fixed at construction; the voltage is the mutable reading,
// resampled on every Poll. The reading cell is guarded by a mutex so a
// shared handle behaves safely under concurrent polling.
type Socket struct {
	name   string
	source Source

	mu      sync.Mutex
	voltage float64
}

// NewSocket creates a socket sampling from the default entropy source.
// A freshly constructed socket already carries an initial reading; it is
// never in an unsampled state.
func NewSocket(name string) *Socket {
	return NewSocketFrom(name, DefaultSource())
}

// NewSocketFrom creates a socket sampling from the given source.
func NewSocketFrom(name string, src Source) *Socket {
	s := &Socket{name: name, source: src}
	s.Poll()
	return s
}

// Name returns the socket's immutable identity.
func (s *Socket) Name() string {
	return s.name
}

// Poll replaces the voltage with a fresh sample from
// [SocketVoltageMin, SocketVoltageMax).
func (s *Socket) Poll() {
	v := s.source.Sample(SocketVoltageMin, SocketVoltageMax)

	s.mu.Lock()
	s.voltage = v
	s.mu.Unlock()
}

// Voltage returns the most recent reading in volts.
func (s *Socket) Voltage() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voltage
}

// String renders a multi-line snapshot of the socket.
func (s *Socket) String() string {
	return fmt.Sprintf("SOCKET:\n    name: %s\n    voltage: %.2f\n", s.name, s.Voltage())
}
