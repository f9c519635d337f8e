package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

const (
	PolicyRetry    = "retry"
	PolicyFailFast = "fail-fast"
)

type Config struct {
	Image     string        `yaml:"image"`
	Window    WindowConfig  `yaml:"window"`
	Scale     float64       `yaml:"scale"`
	Sensor    bool          `yaml:"sensor"`
	OnFailure string        `yaml:"on_failure"`
	Physics   PhysicsConfig `yaml:"physics"`
	Debug     bool          `yaml:"debug"`
	Watch     bool          `yaml:"watch"`
	Status    bool          `yaml:"status"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PhysicsConfig struct {
	Iterations int `yaml:"iterations"`
	TPS        int `yaml:"tps"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "spritecollider",
		},
		Scale:     1,
		OnFailure: PolicyRetry,
		Physics: PhysicsConfig{
			Iterations: 10,
			TPS:        60,
		},
		Watch:  true,
		Status: true,
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.Scale)
	}
	switch c.OnFailure {
	case PolicyRetry, PolicyFailFast:
	default:
		return fmt.Errorf("%w: on_failure %q (want %q or %q)", ErrInvalid, c.OnFailure, PolicyRetry, PolicyFailFast)
	}
	if c.Physics.Iterations < 0 || c.Physics.TPS < 0 {
		return fmt.Errorf("%w: physics iterations and tps must not be negative", ErrInvalid)
	}
	return nil
}
