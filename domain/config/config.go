package config

import "loadshedding-stats/domain/loadshedding"

// Display modes for rendered charts.
const (
	DisplayWindow = "window"
	DisplayFile   = "file"
	DisplayNone   = "none"
)

// Config represents the structure of config.yml used by the tool.
// Every field is optional; Default fills the gaps.
type Config struct {
	DataPath string  `yaml:"data_path"`
	Years    []int   `yaml:"years"`
	LogLevel string  `yaml:"log_level"`
	Display  Display `yaml:"display"`
}

type Display struct {
	Mode   string `yaml:"mode"` // window | file | none
	Dir    string `yaml:"dir"`  // file mode only
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataPath: "loadsheddingData.csv",
		Years:    append([]int(nil), loadshedding.DefaultYears...),
		LogLevel: "info",
		Display: Display{
			Mode:   DisplayWindow,
			Width:  800,
			Height: 600,
		},
	}
}

// WithDefaults fills unset fields from Default.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.DataPath == "" {
		c.DataPath = d.DataPath
	}
	if len(c.Years) == 0 {
		c.Years = d.Years
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Display.Mode == "" {
		c.Display.Mode = d.Display.Mode
	}
	if c.Display.Width <= 0 {
		c.Display.Width = d.Display.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = d.Display.Height
	}
	return c
}
