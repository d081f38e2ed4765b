package config

const (
	defaultDataDir     = "~/.local/share/gpalbums"
	defaultLogDir      = "~/.local/share/gpalbums/logs"
	defaultTitleSuffix = " - Google Photos"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Display: Display{
			TitleSuffix: defaultTitleSuffix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
