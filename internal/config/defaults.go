/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package config resolves the application configuration from flags, the
// config file, environment variables and built-in defaults.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/types"
)

// EnvPrefix namespaces environment overrides, e.g. FITCOACH_SERVER_PORT.
const EnvPrefix = "FITCOACH"

// Default values.
const (
	DefaultServerPort   = 8080
	DefaultQuoteTimeout = 10
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataDir", GetDataDir())
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("storage.backend", memory.BackendSQLite)
	v.SetDefault("storage.keyPrefix", memory.DefaultKeyPrefix)
	v.SetDefault("llm.provider", llm.DefaultProvider)
	v.SetDefault("quotes.timeoutSeconds", DefaultQuoteTimeout)
	v.SetDefault("image.model", llm.DefaultImageModel)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("tracing.sampleRatio", 0.1)
}

var validate = validator.New()

// LoadAppConfig unmarshals and validates the global viper configuration.
func LoadAppConfig() (types.AppConfig, error) {
	return LoadAppConfigFrom(viper.GetViper())
}

// LoadAppConfigFrom unmarshals and validates v.
func LoadAppConfigFrom(v *viper.Viper) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
