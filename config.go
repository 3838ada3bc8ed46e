package lightmgr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configure a Registry.
type Options struct {
	// MaxLights caps the lights bound per state, 1..MaxLightSlots. Zero means MaxLightSlots.
	MaxLights int `yaml:"max_lights"`
	// PerCameraBounds keeps view-space light bounds per camera instead of
	// reusing the first camera's bounds for the whole frame.
	PerCameraBounds bool `yaml:"per_camera_bounds"`
}

func DefaultOptions() Options {
	return Options{MaxLights: MaxLightSlots}
}

func (o Options) normalize() Options {
	if o.MaxLights <= 0 || o.MaxLights > MaxLightSlots {
		o.MaxLights = MaxLightSlots
	}
	return o
}

func (o Options) validate() error {
	if o.MaxLights < 0 || o.MaxLights > MaxLightSlots {
		return fmt.Errorf("max_lights must be within 0..%d, got %d", MaxLightSlots, o.MaxLights)
	}
	return nil
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

// Config is the file configuration of the light manager.
type Config struct {
	Log      LogConfig `yaml:"log"`
	Registry Options   `yaml:"registry"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:      LogConfig{Prefix: "lightmgr"},
		Registry: DefaultOptions(),
	}
}

// LoadConfig reads a YAML config file. Missing fields take their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Registry.validate(); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Prefix == "" {
		cfg.Log.Prefix = "lightmgr"
	}
	cfg.Registry = cfg.Registry.normalize()
}
