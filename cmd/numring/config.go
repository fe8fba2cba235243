package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/calebcase/numring/ring"
)

const (
	envVarPrefix = "NUMRING"
	appName      = "numring"
)

// Config is read from an optional YAML file named by NUMRING_CONFIG_FILE,
// then overridden by NUMRING_* environment variables, then by flags.
type Config struct {
	Base     int    `envconfig:"BASE"      yaml:"base"`
	File     string `envconfig:"FILE"      yaml:"file"`
	LogLevel string `envconfig:"LOG_LEVEL" yaml:"logLevel"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Base:     ring.DefaultBase,
		File:     appName + ".txt",
		LogLevel: logrus.InfoLevel.String(),
	}
}

// LoadConfig reads the configuration file, if any, and the environment.
func LoadConfig() (*Config, error) {
	c := DefaultConfig()

	if configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE"); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshaling config file: %w", err)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Base < ring.MinBase || c.Base > ring.MaxBase {
		return fmt.Errorf(
			"base %d outside [%d, %d]",
			c.Base,
			ring.MinBase,
			ring.MaxBase,
		)
	}

	if c.File == "" {
		return fmt.Errorf("missing required config: `file` (%s_FILE)", envVarPrefix)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}
