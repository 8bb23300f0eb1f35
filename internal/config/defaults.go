package config

const (
	defaultServerURL      = "http://127.0.0.1:12345"
	defaultRequestTimeout = 30
	defaultTokenPath      = "~/.config/bilictl/token.json"
	defaultSnapshotDir    = "~/.cache/bilictl"
	defaultPageSize       = 10
	defaultLocale         = "zh-Hans"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultLogDir         = "~/.local/share/bilictl/logs"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			URL:            defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Auth: Auth{
			TokenPath: defaultTokenPath,
		},
		Snapshot: Snapshot{
			Enabled: true,
			Dir:     defaultSnapshotDir,
		},
		Output: Output{
			PageSize: defaultPageSize,
			Locale:   defaultLocale,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			LogDir: defaultLogDir,
		},
	}
}
