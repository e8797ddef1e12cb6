package app

// Config holds everything an App instance needs from its entrypoint.
type Config struct {
	// ConfigFile overrides the location of bishin.toml. Empty means the
	// default location in the current working directory.
	ConfigFile string

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes an entrypoint-supplied configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
