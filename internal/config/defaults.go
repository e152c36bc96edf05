package config

const (
	defaultProviderBaseURL        = "https://www.crunchyroll.com"
	defaultProviderLanguage       = "en-US"
	defaultProviderUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) rollcall/dev"
	defaultProviderRequestTimeout = 15
	defaultProviderMaxRetries     = 3
	defaultSolverRequestTimeout   = 60
	defaultMappingDBPath          = "~/.local/share/rollcall/mappings.db"
	defaultLogDir                 = "~/.local/share/rollcall/logs"
	defaultLogLevel               = "info"
	defaultLogFormat              = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Provider: Provider{
			BaseURL:        defaultProviderBaseURL,
			Language:       defaultProviderLanguage,
			UserAgent:      defaultProviderUserAgent,
			RequestTimeout: defaultProviderRequestTimeout,
			MaxRetries:     defaultProviderMaxRetries,
		},
		Solver: Solver{
			RequestTimeout: defaultSolverRequestTimeout,
		},
		Mapping: Mapping{
			DBPath: defaultMappingDBPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			LogDir: defaultLogDir,
		},
	}
}
