// Package config handles atlas tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds atlas input settings.
type AtlasConfig struct {
	Manifest string `yaml:"manifest"` // Path to the atlas manifest
}

// WindowConfig holds settings for the window that owns the GL context.
type WindowConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Visible bool `yaml:"visible"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Atlas: AtlasConfig{
			Manifest: "atlas.yaml",
		},
		Window: WindowConfig{
			Width:   320,
			Height:  240,
			Visible: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
