package config

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/prognoshealth/tableproxy/dispatcher"
)

// Config holds all configuration for the lambda
type Config struct {
	Region        string
	Table         string
	Endpoint      string
	LogLevel      logrus.Level
	StatusMapping string
}

// Load loads configuration from environment variables and a .env file when
// one is present. Environment variables win over the .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STATUS_MAPPING", dispatcher.StatusMappingCollapsed)

	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid LOG_LEVEL")
	}

	mapping := v.GetString("STATUS_MAPPING")
	if _, err := dispatcher.ParseStatusMapping(mapping); err != nil {
		return nil, errors.Wrap(err, "invalid STATUS_MAPPING")
	}

	config := &Config{
		Region:        v.GetString("AWS_REGION"),
		Table:         v.GetString("TABLE_NAME"),
		Endpoint:      v.GetString("DYNAMODB_ENDPOINT"),
		LogLevel:      level,
		StatusMapping: mapping,
	}

	return config, nil
}

// StatusMapper returns the dispatcher status mapper named by StatusMapping.
func (config *Config) StatusMapper() (dispatcher.StatusMapper, error) {
	return dispatcher.ParseStatusMapping(config.StatusMapping)
}
