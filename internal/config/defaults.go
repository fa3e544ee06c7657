package config

const (
	// DefaultAPIURL is the blogging service used when none is configured.
	DefaultAPIURL = "https://moyn.dev"

	// TokenPrefix marks API tokens issued by the service.
	TokenPrefix = "moyn_"

	defaultConfigPath     = "~/.config/moyn/config.toml"
	defaultTimeoutSeconds = 30
	defaultUserAgent      = "moyn-cli"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"

	envAPIToken = "MOYN_API_TOKEN"
	envAPIURL   = "MOYN_API_URL"
)

// Default returns a Config populated with repository defaults. The session is
// left empty so environment fallbacks can still apply during normalization.
func Default() Config {
	return Config{
		HTTP: HTTP{
			TimeoutSeconds: defaultTimeoutSeconds,
			UserAgent:      defaultUserAgent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
