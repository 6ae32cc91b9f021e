package seeder

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultTimeout = 10 * time.Minute

// Config holds seeder settings. An empty DatasetPath selects the built-in
// demo dataset; empty Phases runs every phase.
type Config struct {
	DatasetPath string        `yaml:"dataset_path" env:"SEEDER_DATASET_PATH"`
	DryRun      bool          `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
	Phases      []string      `yaml:"phases"       env:"SEEDER_PHASES"       env-separator:","`
	Timeout     time.Duration `yaml:"timeout"      env:"SEEDER_TIMEOUT"      env-default:"10m"`
}

// LoadConfig reads the YAML file at path (when given) and the environment.
// ENV > YAML > env-default.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, cfg.Validate()
}

// ApplyFlags overrides the loaded settings with command-line values.
// phases is a comma-separated list; empty keeps the configured phases.
func (c *Config) ApplyFlags(phases string, dryRun bool) error {
	if dryRun {
		c.DryRun = true
	}
	if strings.TrimSpace(phases) != "" {
		c.Phases = strings.Split(phases, ",")
	}
	return c.Validate()
}

// Validate normalizes phase names, rejects unknown ones and fills a zero timeout.
func (c *Config) Validate() error {
	for i, ph := range c.Phases {
		ph = strings.ToLower(strings.TrimSpace(ph))
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("seeder config: unknown phase %q (want one of %s)", ph, strings.Join(allPhases, ", "))
		}
		c.Phases[i] = ph
	}
	switch {
	case c.Timeout < 0:
		return fmt.Errorf("seeder config: timeout must be >= 0 (got %s)", c.Timeout)
	case c.Timeout == 0:
		c.Timeout = defaultTimeout
	}
	return nil
}

// Dataset returns the configured dataset, or the demo dataset when no path is set.
func (c *Config) Dataset() (*Dataset, error) {
	if c.DatasetPath == "" {
		return DemoDataset(), nil
	}
	return LoadDataset(c.DatasetPath)
}
