package config

// Config represents the full application configuration.
type Config struct {
	APIKey        string              `mapstructure:"apiKey"`
	Model         string              `mapstructure:"model"`
	BaseURL       string              `mapstructure:"baseURL"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ObservabilityConfig controls logging and metrics behavior.
type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig controls structured request/response logging.
type LoggingConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Level         string `mapstructure:"level"`
	Format        string `mapstructure:"format"`
	RedactAPIKeys bool   `mapstructure:"redactAPIKeys"`
}

// MetricsConfig controls in-process usage metrics.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
