// Package config loads the debouncez CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultWindow is the quiet period used when none is configured.
const DefaultWindow = 300 * time.Millisecond

var (
	// ErrInvalidWindow is returned when the window is not strictly positive.
	ErrInvalidWindow = errors.New("window must be greater than zero")
	// ErrInvalidLogFormat is returned for a log format other than console or json.
	ErrInvalidLogFormat = errors.New("log format must be console or json")
)

type Config struct {
	Window  time.Duration `yaml:"window"`
	Log     Log           `yaml:"log"`
	Metrics Metrics       `yaml:"metrics"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Metrics struct {
	// Listen is the address serving /metrics. Empty disables the server.
	Listen string `yaml:"listen"`
	// Stdout periodically dumps metrics to stdout.
	Stdout bool `yaml:"stdout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: DefaultWindow,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads filename over the defaults. Keys absent from the file keep their
// default value.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidWindow, c.Window)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}
