package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STEPBOARD_"

// Config holds all stepboard configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Remote user directory
	Directory DirectoryConfig `yaml:"directory" envPrefix:"DIRECTORY_"`

	// Synthetic score generation
	Scores ScoresConfig `yaml:"scores" envPrefix:"SCORES_"`

	// Terminal UI
	UI UIConfig `yaml:"ui" envPrefix:"UI_"`

	// Logging
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOGGING_"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "stepboard",
		Version: "0.3.0",

		Directory: DirectoryConfig{
			BaseURL:       "https://randomuser.me/api/",
			Results:       100,
			Nationalities: []string{"us", "gb", "ca", "au"},
			Timeout:       "15s",
			UserAgent:     "stepboard/0.3",
		},

		Scores: ScoresConfig{
			Max:  20000,
			Seed: 0,
		},

		UI: *DefaultUIConfig(),

		Logging: LoggingConfig{
			Level:      "info",
			DebugMode:  false,
			File:       filepath.Join(".stepboard", "logs", "stepboard.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// DefaultPath returns the default path to .stepboard/config.yaml.
func DefaultPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".stepboard", "config.yaml")
	}
	return filepath.Join(cwd, ".stepboard", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides loads an optional .env file and then applies STEPBOARD_*
// environment variables. Variables already set in the process win over .env.
func (c *Config) applyEnvOverrides() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	c.Directory.Nationalities = normalizeNationalities(c.Directory.Nationalities)
	return nil
}

func normalizeNationalities(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// GetDirectoryTimeout returns the directory request timeout as a duration.
func (c *Config) GetDirectoryTimeout() time.Duration {
	d, err := time.ParseDuration(c.Directory.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := time.ParseDuration(c.Directory.Timeout); err != nil {
		return fmt.Errorf("invalid config: directory.timeout %q: %w", c.Directory.Timeout, err)
	}

	return nil
}
