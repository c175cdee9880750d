// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration handling.
var (
	// ErrUnsupportedFormat is returned for a config file that is neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("bench: unsupported config format")

	// ErrInvalidConfig is returned when a decoded config violates its constraints.
	ErrInvalidConfig = errors.New("bench: invalid config")
)

// Default values applied by LoadConfig and Config.withDefaults.
const (
	DefaultRuns    = 1
	DefaultWorkers = 1
)

// ProblemEntry names one instance file and its best known tour length.
// Best <= 0 means unknown; no gap is reported then.
type ProblemEntry struct {
	Path string  `yaml:"path" toml:"path"`
	Best float64 `yaml:"best" toml:"best"`
}

// Config describes one benchmark.
type Config struct {
	Runs       int            `yaml:"runs" toml:"runs"`
	Workers    int            `yaml:"workers" toml:"workers"`
	Symmetrize bool           `yaml:"symmetrize" toml:"symmetrize"`
	Problems   []ProblemEntry `yaml:"problems" toml:"problems"`
	Solvers    []string       `yaml:"solvers" toml:"solvers"`
}

// LoadConfig decodes path by extension (.yaml, .yml or .toml), rejecting
// unknown keys, applies defaults, resolves relative problem paths against the
// config file's directory and validates the result.
//
// Errors: ErrUnsupportedFormat, ErrInvalidConfig, decoder and I/O errors (wrapped).
func LoadConfig(path string) (*Config, error) {
	var (
		cfg Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	case ".toml":
		err = decodeTOML(path, &cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("bench: load config %s: %w", path, err)
	}

	cfg = cfg.withDefaults()
	cfg.resolvePaths(filepath.Dir(path))
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	return dec.Decode(cfg)
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	return nil
}

// withDefaults returns a copy with zero Runs/Workers replaced by the defaults.
func (c Config) withDefaults() Config {
	if c.Runs == 0 {
		c.Runs = DefaultRuns
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}

	return c
}

// resolvePaths makes relative problem paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	for i := range c.Problems {
		p := c.Problems[i].Path
		if p != "" && !filepath.IsAbs(p) {
			c.Problems[i].Path = filepath.Join(dir, p)
		}
	}
}

// Validate checks the config after defaults were applied.
//
// Errors: ErrInvalidConfig (wrapped with the first violation), ErrUnknownSolver.
func (c *Config) Validate() error {
	switch {
	case c.Runs < 1:
		return fmt.Errorf("%w: runs must be >= 1, got %d", ErrInvalidConfig, c.Runs)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	case len(c.Problems) == 0:
		return fmt.Errorf("%w: no problems", ErrInvalidConfig)
	case len(c.Solvers) == 0:
		return fmt.Errorf("%w: no solvers", ErrInvalidConfig)
	}
	for i, p := range c.Problems {
		if p.Path == "" {
			return fmt.Errorf("%w: problems[%d] has no path", ErrInvalidConfig, i)
		}
		if p.Best < 0 {
			return fmt.Errorf("%w: problems[%d] has negative best %v", ErrInvalidConfig, i, p.Best)
		}
	}
	for _, name := range c.Solvers {
		if _, err := SolverByName(name); err != nil {
			return err
		}
	}

	return nil
}
