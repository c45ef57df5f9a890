package config

// DirectoryConfig configures the random-user directory service.
type DirectoryConfig struct {
	BaseURL       string   `yaml:"base_url" env:"BASE_URL" validate:"required,url"`
	Results       int      `yaml:"results" env:"RESULTS" validate:"gte=1,lte=5000"`
	Nationalities []string `yaml:"nationalities" env:"NATIONALITIES" validate:"required,min=1,dive,len=2,alpha"`
	Timeout       string   `yaml:"timeout" env:"TIMEOUT"`
	UserAgent     string   `yaml:"user_agent" env:"USER_AGENT"`
}

// ScoresConfig configures synthetic score generation.
type ScoresConfig struct {
	// Max is the exclusive upper bound of generated scores.
	Max int `yaml:"max" env:"MAX" validate:"gt=0"`

	// Seed fixes the generator; 0 means a fresh random seed per run.
	Seed int64 `yaml:"seed" env:"SEED"`
}
