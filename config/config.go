// Package config loads outline.toml, the optional configuration file for
// scanning and watching source trees.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

const FileName = "outline.toml"

type Config struct {
	// Include and Exclude are doublestar patterns matched against
	// slash-separated paths relative to the scan root.
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`

	// Jobs bounds the number of files projected at once. Zero means
	// GOMAXPROCS.
	Jobs int `toml:"jobs"`

	// Indent is used for pretty-printed output. Empty means compact.
	Indent string `toml:"indent"`

	Watch Watch `toml:"watch"`
}

type Watch struct {
	Debounce Duration `toml:"debounce"`
}

// Duration is a time.Duration written as a string like "200ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	return &Config{
		Include: []string{"**/*.java"},
		Exclude: []string{"**/.*/**", "**/build/**", "**/target/**", "**/out/**"},
		Watch:   Watch{Debounce: Duration{200 * time.Millisecond}},
	}
}

// Load reads the file at path on top of the defaults. Keys the file sets
// replace the defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Find loads outline.toml from root if there is one and returns the defaults
// otherwise.
func Find(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}
	return Load(path)
}

func (c *Config) Validate() error {
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid pattern %q", pattern)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// Workers returns the effective number of parallel projections.
func (c *Config) Workers() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// Matches reports whether the slash-separated relative path rel is selected
// by the include and exclude patterns.
func (c *Config) Matches(rel string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	for _, pattern := range c.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
