package config

const (
	defaultLogFormat = "auto"
	defaultLogLevel  = "info"
	defaultTopWords  = 0
	maxTopWords      = 1000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			TopWords: defaultTopWords,
		},
	}
}
