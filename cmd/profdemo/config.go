package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "profdemo.toml"

type config struct {
	Session  string         `toml:"session"`
	Out      string         `toml:"out"`
	Workload workloadConfig `toml:"workload"`
}

type workloadConfig struct {
	Workers int      `toml:"workers"`
	Tasks   int      `toml:"tasks"`
	MinTask duration `toml:"min_task"`
	MaxTask duration `toml:"max_task"`
}

// duration lets TOML carry Go duration strings like "250us" or "2ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultConfig() config {
	return config{
		Session: "profdemo",
		Out:     "", // profiler.DefaultPath
		Workload: workloadConfig{
			Workers: 4,
			Tasks:   16,
			MinTask: duration{200 * time.Microsecond},
			MaxTask: duration{2 * time.Millisecond},
		},
	}
}

// loadConfig reads path, or profdemo.toml from the working directory when
// path is empty and the file exists. Missing config is not an error; the
// defaults stand.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Workload.Workers <= 0 {
		return fmt.Errorf("workload.workers must be > 0, got %d", c.Workload.Workers)
	}
	if c.Workload.Tasks < 0 {
		return fmt.Errorf("workload.tasks must be >= 0, got %d", c.Workload.Tasks)
	}
	if c.Workload.MinTask.Duration < 0 || c.Workload.MaxTask.Duration < c.Workload.MinTask.Duration {
		return fmt.Errorf("workload task durations invalid: min %v, max %v",
			c.Workload.MinTask.Duration, c.Workload.MaxTask.Duration)
	}
	return nil
}
