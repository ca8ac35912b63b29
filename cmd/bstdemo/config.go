package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/spf13/pflag"
)

// Config of the demo run.
type Config struct {
	// Values inserted in order.
	Values []int `toml:"values" json:"values"`
	// Remove is the value removed after the inserts.
	Remove int `toml:"remove" json:"remove"`
	// Log level.
	LogLevel string `toml:"log-level" json:"log-level"`
	// Log format. one of json, text, or console.
	LogFormat string `toml:"log-format" json:"log-format"`
}

// NewConfig returns the configuration of the illustrative scenario.
func NewConfig() *Config {
	return &Config{
		Values:    []int{10, 6, 4, 16, 7, 12, 20},
		Remove:    10,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Parse loads the config file named by the "config" flag, then lets the flags
// that were set explicitly override it.
func (c *Config) Parse(flagSet *pflag.FlagSet) error {
	if configFile, _ := flagSet.GetString("config"); configFile != "" {
		meta, err := toml.DecodeFile(configFile, c)
		if err != nil {
			return errors.Annotatef(err, "load config %s", configFile)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return errors.Errorf("config contains undefined item: %s", strings.Join(keys, ", "))
		}
	}
	if flagSet.Changed("values") {
		c.Values, _ = flagSet.GetIntSlice("values")
	}
	if flagSet.Changed("remove") {
		c.Remove, _ = flagSet.GetInt("remove")
	}
	if flagSet.Changed("log-level") {
		c.LogLevel, _ = flagSet.GetString("log-level")
	}
	if flagSet.Changed("log-format") {
		c.LogFormat, _ = flagSet.GetString("log-format")
	}
	return c.Validate()
}

// Validate the configuration.
func (c *Config) Validate() error {
	if len(c.Values) == 0 {
		return errors.New("values can not be empty")
	}
	switch c.LogFormat {
	case "json", "text", "console":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
