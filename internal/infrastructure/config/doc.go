// Package config loads Hearth Core configuration from YAML.
//
// Loading order: hardcoded defaults, then file values, then HEARTH_*
// environment variable overrides, then validation. The configuration
// covers the house identity, logging, the demonstration poll loop, and
// the room/device layout the house is seeded from.
package config
