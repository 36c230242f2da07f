// Package host holds the configuration for the host-side tools.
package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nucleolab/host/serial"
)

// Config is the on-disk configuration for ledterm.
type Config struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// DefaultConfig matches the firmware's serial setup on a Linux host.
func DefaultConfig() Config {
	return Config{
		Device: "/dev/ttyACM0",
		Baud:   115200,
	}
}

// LoadConfig reads a YAML config file, filling omitted fields from the
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Device == "" {
		cfg.Device = DefaultConfig().Device
	}
	if cfg.Baud == 0 {
		cfg.Baud = DefaultConfig().Baud
	}
	return cfg, nil
}

// SerialConfig converts the file settings into port parameters.
func (c Config) SerialConfig() *serial.Config {
	cfg := serial.DefaultConfig(c.Device)
	cfg.Baud = c.Baud
	return cfg
}
