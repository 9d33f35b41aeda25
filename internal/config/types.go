// Package config loads the optional wireframe.yaml settings file.
package config

// Output formats accepted by the fake command.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config is the full settings document.
type Config struct {
	LogLevel  string   `yaml:"log_level" validate:"omitempty,log_level"`
	LogFormat string   `yaml:"log_format" validate:"omitempty,oneof=console json"`
	Output    string   `yaml:"output" validate:"omitempty,oneof=json yaml text"`
	Services  Services `yaml:"services"`
	Preview   Preview  `yaml:"preview"`
}

// Services holds the placeholder URL templates handed to the faker.
type Services struct {
	AvatarURL string `yaml:"avatar_url" validate:"omitempty,url_template"`
	ImageURL  string `yaml:"image_url" validate:"omitempty,url_template"`
}

// Preview tunes the dashboard preview.
type Preview struct {
	Rows int `yaml:"rows" validate:"omitempty,min=1,max=50"`
}

// Default preview and logging values.
const (
	DefaultLogLevel    = "info"
	DefaultPreviewRows = 5
)

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatConsole,
		Output:    OutputText,
		Preview:   Preview{Rows: DefaultPreviewRows},
	}
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	d := Defaults()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Preview.Rows == 0 {
		c.Preview.Rows = d.Preview.Rows
	}
}
