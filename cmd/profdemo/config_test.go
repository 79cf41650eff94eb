package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Expected error for explicit missing config path")
	}

	// No path and no profdemo.toml in cwd: defaults stand.
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Workload.Workers != 4 || cfg.Workload.Tasks != 16 {
		t.Errorf("Unexpected defaults: %+v", cfg.Workload)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profdemo.toml")
	content := `
session = "bench"
out = "bench.json"

[workload]
workers = 8
tasks = 100
min_task = "250us"
max_task = "3ms"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Writing config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.Session != "bench" || cfg.Out != "bench.json" {
		t.Errorf("Unexpected session/out: %+v", cfg)
	}
	if cfg.Workload.Workers != 8 || cfg.Workload.Tasks != 100 {
		t.Errorf("Unexpected workload shape: %+v", cfg.Workload)
	}
	if cfg.Workload.MinTask.Duration != 250*time.Microsecond {
		t.Errorf("Expected min_task 250us, got %v", cfg.Workload.MinTask.Duration)
	}
	if cfg.Workload.MaxTask.Duration != 3*time.Millisecond {
		t.Errorf("Expected max_task 3ms, got %v", cfg.Workload.MaxTask.Duration)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Config should validate, got %v", err)
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Workload.Workers = 0
	if err := cfg.validate(); err == nil {
		t.Error("Expected validation error for zero workers")
	}

	cfg = defaultConfig()
	cfg.Workload.MaxTask.Duration = cfg.Workload.MinTask.Duration - time.Microsecond
	if err := cfg.validate(); err == nil {
		t.Error("Expected validation error for max_task < min_task")
	}
}
