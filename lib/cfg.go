package lib

import (
	"fmt"
	"log"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"
)

// EvalConfig collects every knob of an evaluation run. Defaults live in
// DefaultEvalConfig rather than package state so tests can supply their own.
type EvalConfig struct {
	Names      []string  `yaml:"names"`
	GtDir      string    `yaml:"gtdir"`
	Split      string    `yaml:"split"`
	ResDir     string    `yaml:"resdir"`
	Thresholds []float64 `yaml:"thrs"`
	Counts     []int     `yaml:"cnts"`
	MaxImages  int       `yaml:"maxn"`
	Show       bool      `yaml:"show"`
	FName      string    `yaml:"fname"`
	Colors     []string  `yaml:"col"`
	Threads    int       `yaml:"threads"`
}

func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		ResDir:     "boxes/",
		Thresholds: []float64{0.7},
		Counts:     []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
		Show:       true,
		Threads:    runtime.NumCPU(),
	}
}

// GetEvalConfig reads a yaml run configuration, filling unset keys from the
// defaults.
func GetEvalConfig(configRoot string) EvalConfig {
	config := DefaultEvalConfig()

	data, err := os.ReadFile(configRoot)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	config.ApplyDefaults()
	return config
}

// ApplyDefaults restores the fixed default lists when a config cleared them.
func (cfg *EvalConfig) ApplyDefaults() {
	def := DefaultEvalConfig()
	if cfg.ResDir == "" {
		cfg.ResDir = def.ResDir
	}
	if len(cfg.Thresholds) == 0 {
		cfg.Thresholds = def.Thresholds
	}
	if len(cfg.Counts) == 0 {
		cfg.Counts = def.Counts
	}
	if cfg.Threads <= 0 {
		cfg.Threads = def.Threads
	}
}

// Validate fails fast on anything that would poison the run: a missing
// method list or dataset handle, and threshold pairs that collide once
// rounded to integer percent for the cache filename.
func (cfg EvalConfig) Validate() error {
	if len(cfg.Names) == 0 {
		return fmt.Errorf("no method names configured")
	}
	if cfg.GtDir == "" || cfg.Split == "" {
		return fmt.Errorf("ground truth directory and split are required")
	}
	seen := make(map[int]float64)
	for _, thr := range cfg.Thresholds {
		pct := int(math.Round(thr * 100))
		if prev, ok := seen[pct]; ok {
			return fmt.Errorf("thresholds %v and %v both round to %d%% and would share a cache file", prev, thr, pct)
		}
		seen[pct] = thr
	}
	return nil
}
