// Package config handles geomkit configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig describes the screen rectangle scenes are projected onto.
type ViewportConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	MinDepth float32 `yaml:"min_depth"`
	MaxDepth float32 `yaml:"max_depth"`
}

// RenderConfig holds wireframe rendering settings.
type RenderConfig struct {
	Format        string  `yaml:"format"`     // png or webp
	Background    uint32  `yaml:"background"` // 0xRRGGBBAA
	LineWidth     float32 `yaml:"line_width"`
	GridHalfWidth float32 `yaml:"grid_half_width"`
	GridSubdivide int     `yaml:"grid_subdivision"`
	CurveSegments int     `yaml:"curve_segments"`
	DrawGrid      bool    `yaml:"draw_grid"`
	ControlPoints bool    `yaml:"control_points"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:    1280,
			Height:   720,
			MinDepth: 0,
			MaxDepth: 1,
		},
		Render: RenderConfig{
			Format:        "png",
			Background:    0x464646FF,
			LineWidth:     1,
			GridHalfWidth: 2,
			GridSubdivide: 10,
			CurveSegments: 100,
			DrawGrid:      true,
			ControlPoints: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
