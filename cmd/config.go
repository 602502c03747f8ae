package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/ledger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when no -config flag is given. It is optional.
const DefaultConfigFile = ".ledger.yaml"

// Config holds the settings shared by all subcommands.
type Config struct {
	Journal     string `yaml:"journal"`
	Unit        string `yaml:"unit"`
	AdjustSigns bool   `yaml:"adjust_signs"`
	Strict      bool   `yaml:"strict"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Journal:  "journal.txt",
		Unit:     ledger.DefaultUnit,
		Strict:   true,
		LogLevel: "info",
	}
}

// LoadConfig returns the default settings, overridden by the YAML file at
// path, then by the LEDGER_* environment variables. A .env file in the
// working directory is loaded into the environment first.
//
// A missing file is not an error when path is DefaultConfigFile.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}
	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultConfigFile:
		// optional
	case err != nil:
		return c, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(content, &c); err != nil {
			return c, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// applyEnv overrides the settings with the environment variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("LEDGER_JOURNAL"); ok && v != "" {
		c.Journal = v
	}
	if v, ok := lookup("LEDGER_UNIT"); ok && v != "" {
		c.Unit = strings.ToUpper(v)
	}
	if v, ok := lookup("LEDGER_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	for name, dst := range map[string]*bool{"LEDGER_ADJUST_SIGNS": &c.AdjustSigns, "LEDGER_STRICT": &c.Strict} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.Journal == "" {
		return errors.New("no journal file configured")
	}
	return ledger.ValidateUnit(c.Unit)
}
