package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hearthward/hearth-core/internal/house"
	"github.com/hearthward/hearth-core/internal/infrastructure/config"
	"github.com/hearthward/hearth-core/internal/infrastructure/logging"
)

func TestGetConfigPath_Default(t *testing.T) {
	t.Setenv("HEARTH_CONFIG", "")

	if path := getConfigPath(); path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

func TestGetConfigPath_EnvOverride(t *testing.T) {
	expected := "/custom/path/config.yaml"
	t.Setenv("HEARTH_CONFIG", expected)

	if path := getConfigPath(); path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("HEARTH_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

func TestRun_Walkthrough(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
house:
  name: "Test House"

logging:
  level: error
  format: text
  output: stderr

poll:
  interval_seconds: 1
  cycles: 0

layout:
  - room: bedroom
    devices:
      - name: lamp
        kind: socket
      - name: stat
        kind: thermostat
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	t.Setenv("HEARTH_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestBuildHouse(t *testing.T) {
	log := logging.Default()

	t.Run("seeds rooms and devices from layout", func(t *testing.T) {
		cfg := &config.Config{
			House: config.HouseConfig{Name: "H"},
			Layout: []config.RoomLayout{
				{
					Room: "bedroom",
					Devices: []config.DeviceLayout{
						{Name: "lamp", Kind: config.KindSocket},
						{Name: "stat", Kind: config.KindThermostat},
					},
				},
				{
					Room: "kitchen",
					Devices: []config.DeviceLayout{
						{Name: "kettle", Kind: config.KindSocket},
					},
				},
			},
		}

		h, err := buildHouse(cfg, log)
		if err != nil {
			t.Fatalf("buildHouse() error = %v", err)
		}

		stats := h.GetStats()
		if stats.Rooms != 2 {
			t.Errorf("Rooms = %d, want 2", stats.Rooms)
		}
		if stats.Devices != 3 {
			t.Errorf("Devices = %d, want 3", stats.Devices)
		}
		if stats.IndexedSockets != 2 {
			t.Errorf("IndexedSockets = %d, want 2", stats.IndexedSockets)
		}
	})

	t.Run("surfaces duplicate layout entries", func(t *testing.T) {
		cfg := &config.Config{
			House: config.HouseConfig{Name: "H"},
			Layout: []config.RoomLayout{
				{
					Room: "bedroom",
					Devices: []config.DeviceLayout{
						{Name: "lamp", Kind: config.KindSocket},
						{Name: "lamp", Kind: config.KindSocket},
					},
				},
			},
		}

		_, err := buildHouse(cfg, log)
		if !errors.Is(err, house.ErrDuplicateDevice) {
			t.Fatalf("buildHouse() error = %v, want ErrDuplicateDevice", err)
		}
	})
}
