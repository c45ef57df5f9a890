package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"` // debug, info, warn, error
	DebugMode  bool            `yaml:"debug_mode" env:"DEBUG_MODE"`                              // Master toggle - false = no logging
	File       string          `yaml:"file" env:"FILE"`
	MaxSizeMB  int             `yaml:"max_size_mb" env:"MAX_SIZE_MB" validate:"gte=0"`
	MaxBackups int             `yaml:"max_backups" env:"MAX_BACKUPS" validate:"gte=0"`
	MaxAgeDays int             `yaml:"max_age_days" env:"MAX_AGE_DAYS" validate:"gte=0"`
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}
