// Hearth Core - smart-home device registry
//
// This is the demonstration entry point. It seeds a house from the
// configured room/device layout, renders it, polls every device a
// configured number of rounds, and exercises the registry's error paths.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hearthward/hearth-core/internal/device"
	"github.com/hearthward/hearth-core/internal/house"
	"github.com/hearthward/hearth-core/internal/infrastructure/config"
	"github.com/hearthward/hearth-core/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error lets main handle exit codes
// consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded.
	log := logging.Default()
	log.Info("starting Hearth Core", "version", version, "commit", commit)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings.
	log = logging.New(cfg.Logging, version)

	h, err := buildHouse(cfg, log)
	if err != nil {
		return fmt.Errorf("building house: %w", err)
	}
	stats := h.GetStats()
	log.Info("house built",
		"house", h.Name(),
		"id", h.ID(),
		"rooms", stats.Rooms,
		"devices", stats.Devices,
	)

	fmt.Printf("The house is:\n%s\n", h)

	demonstrateErrorPaths(h, log)

	if err := pollLoop(ctx, h, cfg, log); err != nil {
		return err
	}

	fmt.Printf("The house after polling is:\n%s\n", h)
	fmt.Printf("Rooms in the house are: %v\n", h.Rooms())
	for _, room := range h.Rooms() {
		names, err := h.Devices(room)
		if err != nil {
			return fmt.Errorf("listing devices in %q: %w", room, err)
		}
		fmt.Printf("Devices in %s are: %v\n", room, names)
	}

	log.Info("Hearth Core stopped")
	return nil
}

// buildHouse seeds a house from the configured layout.
func buildHouse(cfg *config.Config, log *logging.Logger) (*house.House, error) {
	h := house.New(cfg.House.Name)
	h.SetLogger(log.With("component", "house"))

	for _, room := range cfg.Layout {
		for _, devCfg := range room.Devices {
			var dev device.Device
			switch devCfg.Kind {
			case config.KindSocket:
				dev = device.NewSocket(devCfg.Name)
			case config.KindThermostat:
				dev = device.NewThermostat(devCfg.Name)
			default:
				// Validate() rejects unknown kinds before we get here.
				return nil, fmt.Errorf("unknown device kind %q", devCfg.Kind)
			}

			if err := h.AddDevice(room.Room, dev); err != nil {
				return nil, fmt.Errorf("adding %q to %q: %w", devCfg.Name, room.Room, err)
			}
		}
	}
	return h, nil
}

// demonstrateErrorPaths exercises the registry's failure modes: a
// duplicate device add and a lookup on a room that was never created.
func demonstrateErrorPaths(h *house.House, log *logging.Logger) {
	rooms := h.Rooms()
	if len(rooms) > 0 {
		room := rooms[0]
		if names, err := h.Devices(room); err == nil && len(names) > 0 {
			err := h.AddDevice(room, device.NewSocket(names[0]))
			if errors.Is(err, house.ErrDuplicateDevice) {
				log.Info("duplicate add rejected as expected", "room", room, "error", err)
			} else {
				log.Warn("duplicate add not rejected", "room", room, "error", err)
			}
		}
	}

	_, err := h.Devices("a room that does not exist")
	if errors.Is(err, house.ErrNoSuchRoom) {
		log.Info("unknown room rejected as expected", "error", err)
	} else {
		log.Warn("unknown room lookup not rejected", "error", err)
	}
}

// pollLoop refreshes every device reading on the configured interval
// until the cycle budget is spent or the context is cancelled.
func pollLoop(ctx context.Context, h *house.House, cfg *config.Config, log *logging.Logger) error {
	if cfg.Poll.Cycles == 0 {
		return nil
	}

	ticker := time.NewTicker(cfg.GetPollInterval())
	defer ticker.Stop()

	for cycle := 1; ; cycle++ {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received during polling")
			return nil
		case <-ticker.C:
			h.PollAll()
			log.Info("poll cycle complete", "cycle", cycle, "of", cfg.Poll.Cycles)
			if cycle >= cfg.Poll.Cycles {
				return nil
			}
		}
	}
}

// getConfigPath returns the configuration file path.
// Uses the HEARTH_CONFIG environment variable if set.
func getConfigPath() string {
	if path := os.Getenv("HEARTH_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
