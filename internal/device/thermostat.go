package device

import (
	"fmt"
	"sync"
)

// Temperature sampling domain for thermostats, in degrees Celsius.
const (
	ThermostatTempMin = -10.0
	ThermostatTempMax = 40.0
)

// Thermostat is a room thermostat that reports ambient temperature.
//
// Same lifecycle as Socket: identity fixed at construction, reading
// resampled on every Poll through a mutex-guarded cell.
type Thermostat struct {
	name   string
	source Source

	mu          sync.Mutex
	temperature float64
}

// NewThermostat creates a thermostat sampling from the default entropy
// source, with an initial reading already taken.
func NewThermostat(name string) *Thermostat {
	return NewThermostatFrom(name, DefaultSource())
}

// NewThermostatFrom creates a thermostat sampling from the given source.
func NewThermostatFrom(name string, src Source) *Thermostat {
	t := &Thermostat{name: name, source: src}
	t.Poll()
	return t
}

// Name returns the thermostat's immutable identity.
func (t *Thermostat) Name() string {
	return t.name
}

// Poll replaces the temperature with a fresh sample from
// [ThermostatTempMin, ThermostatTempMax).
func (t *Thermostat) Poll() {
	v := t.source.Sample(ThermostatTempMin, ThermostatTempMax)

	t.mu.Lock()
	t.temperature = v
	t.mu.Unlock()
}

// Temperature returns the most recent reading in degrees Celsius.
func (t *Thermostat) Temperature() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.temperature
}

// String renders a multi-line snapshot of the thermostat.
func (t *Thermostat) String() string {
	return fmt.Sprintf("THERMOSTAT:\n    name: %s\n    temperature: %.2f\n", t.name, t.Temperature())
}
