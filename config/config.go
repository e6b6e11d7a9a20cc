// Package config holds the construction-time settings of a cache.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation and decoding failure.
var ErrInvalidConfig = errors.New("invalid cache config")

const (
	DefaultMaxSize = 1000
	DefaultTTL     = time.Hour
)

// Config enumerates every recognized cache option. Both fields are required
// and fixed for the lifetime of a cache instance.
type Config struct {
	// MaxSize bounds the number of entries, not bytes.
	MaxSize int `yaml:"max_size"`

	// DefaultTTL applies to writes that do not carry their own TTL.
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// Default returns 1000 entries with a one hour TTL.
func Default() Config {
	return Config{MaxSize: DefaultMaxSize, DefaultTTL: DefaultTTL}
}

// Validate checks that both settings are positive.
func (c Config) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("%w: max_size must be positive, got %d", ErrInvalidConfig, c.MaxSize)
	}
	if c.DefaultTTL <= 0 {
		return fmt.Errorf("%w: default_ttl must be positive, got %s", ErrInvalidConfig, c.DefaultTTL)
	}
	return nil
}

/*
Load decodes a YAML document into a Config and validates it.

Keys that Config does not declare are rejected instead of ignored, so a typo
such as "max_szie" fails loudly. Omitted keys keep their Default values.
Durations use Go syntax ("90s", "1h30m").
*/
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open cache config: %w", err)
	}
	defer f.Close()

	return Load(f)
}
