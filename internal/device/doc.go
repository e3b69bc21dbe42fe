// Package device defines the device abstraction for Hearth Core.
//
// A device is an entity with an immutable identity name and a mutable
// sampled reading. The reading is refreshed in place via Poll, so every
// holder of a shared handle observes the new value immediately.
//
// # Key Types
//
//   - Device: the capability contract (Name, Poll, String)
//   - Socket: a powered socket reporting its supply voltage
//   - Thermostat: a room thermostat reporting ambient temperature
//   - Source: the entropy source readings are sampled from
//   - Index: a per-variant bookkeeping collection of shared handles
//
// # Usage
//
//	sock := device.NewSocket("bedside lamp")
//	sock.Poll()                  // resample voltage from [0, 380)
//	fmt.Println(sock)            // multi-line snapshot
//
// Variants guard their reading cell with a mutex, so polling through a
// shared handle is safe even when handles are held by multiple owners.
package device
