// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// DemoConfig holds demo scene settings.
type DemoConfig struct {
	// FillSpeed is the fill-amount sweep in cycles per second for the
	// animated filled elements.
	FillSpeed float32 `yaml:"fill_speed"`
	// Clockwise sets the sweep direction of the radial fills.
	Clockwise bool `yaml:"clockwise"`
	// Background is the clear color as RGBA in [0,1].
	Background [4]float32 `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Demo: DemoConfig{
			FillSpeed:  0.25,
			Clockwise:  true,
			Background: [4]float32{0.1, 0.1, 0.15, 1.0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
