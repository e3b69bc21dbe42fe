// Package logging provides the structured logger for Hearth Core.
//
// It wraps log/slog with level parsing, JSON or text output, and default
// service fields, all driven by config.LoggingConfig.
package logging
