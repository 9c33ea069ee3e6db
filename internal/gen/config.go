package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the manifest name looked up when none is given.
const DefaultConfigFile = "exhaust.yaml"

// ErrInvalidConfig is returned for a manifest that parses but is unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the exhaust.yaml manifest:
//
//	packages:
//	  - pattern: ./colors
//	    types: [Color, Shade]
//	    output: colors_exhaust.go
type Config struct {
	Packages []PackageConfig `yaml:"packages"`
}

// PackageConfig selects the types to generate for one package.
type PackageConfig struct {
	Pattern string   `yaml:"pattern"`
	Types   []string `yaml:"types"`
	Output  string   `yaml:"output,omitempty"`
}

// ParseConfig decodes and validates a manifest. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses the manifest at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

func (c *Config) validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("%w: no packages", ErrInvalidConfig)
	}
	for i, p := range c.Packages {
		if p.Pattern == "" {
			return fmt.Errorf("%w: packages[%d]: missing pattern", ErrInvalidConfig, i)
		}
		if len(p.Types) == 0 {
			return fmt.Errorf("%w: packages[%d]: no types", ErrInvalidConfig, i)
		}
		if p.Output != "" && filepath.Base(p.Output) != p.Output {
			return fmt.Errorf("%w: packages[%d]: output %q must be a file name", ErrInvalidConfig, i, p.Output)
		}
	}
	return nil
}

// Requests turns the manifest into generation requests. Patterns resolve
// relative to dir, normally the directory holding the manifest.
func (c *Config) Requests(dir string) []Request {
	reqs := make([]Request, 0, len(c.Packages))
	for _, p := range c.Packages {
		reqs = append(reqs, Request{
			Dir:     dir,
			Pattern: p.Pattern,
			Types:   p.Types,
			Output:  p.Output,
		})
	}
	return reqs
}
