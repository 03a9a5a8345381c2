package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AIConfig struct {
	Key                  string        `mapstructure:"key"`
	Model                string        `mapstructure:"model"`
	MaxRequestsPerMinute float32       `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32       `mapstructure:"max_requests_per_day"`
	MaxAttempts          int           `mapstructure:"max_attempts"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
}

func (config AIConfig) validate() error {

	var missingFields []string

	if config.Key == "" {
		missingFields = append(missingFields, "key")
	}

	if config.Model == "" {
		missingFields = append(missingFields, "model")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	if config.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1")
	}

	return nil
}

func (config AIConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("ai.key", "AI_KEY"); err != nil {
		return err
	}
	return viper.BindEnv("ai.model", "AI_MODEL")
}
