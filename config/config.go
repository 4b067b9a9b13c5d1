package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var GConfig = Default()

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Init replaces GConfig with the YAML in data, applied over the defaults.
// Empty data keeps the defaults.
func Init(data []byte) {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	GConfig = c
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func Default() *Config {
	return &Config{
		Log: Log{
			LogLevel:      "info",
			LogFormat:     FormatConsole,
			LogMaxSize:    10,
			LogMaxBackups: 3,
			LogMaxAge:     7,
		},
	}
}

type Config struct {
	Log `yaml:",inline"`
}

func (c *Config) Verify() error {
	if c.LogFormat != FormatConsole && c.LogFormat != FormatJSON {
		return fmt.Errorf("log_format must be %s or %s, got %q", FormatConsole, FormatJSON, c.LogFormat)
	}
	if c.LogMaxSize < 0 || c.LogMaxBackups < 0 || c.LogMaxAge < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}

type Log struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
}
