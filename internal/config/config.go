package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Server     ServerConfig     `mapstructure:"server"`
	AI         AIConfig         `mapstructure:"ai"`
	DB         DBConfig         `mapstructure:"db"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Policy     PolicyConfig     `mapstructure:"policy"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Alerts     AlertsConfig     `mapstructure:"alerts"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.Reset()
	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	setDefaults()

	err := bindEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.metrics_port", 9090)
	viper.SetDefault("ai.model", "gemini-1.5-flash")
	viper.SetDefault("ai.max_attempts", 1)
	viper.SetDefault("assessment.pending_ttl", "30m")
	viper.SetDefault("alerts.daily_schedule", "5 0 * * *")
	viper.SetDefault("alerts.weekly_schedule", "10 0 * * 1")
}

func bindEnvironmentVariables() error {
	var errs []error

	ai, db, logger, telegram, policy := AIConfig{}, DBConfig{}, LoggerConfig{}, TelegramConfig{}, PolicyConfig{}

	if err := ai.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := db.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := telegram.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("TelegramConfig: %w", err))
	}

	if err := policy.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("PolicyConfig: %w", err))
	}

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.AI.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.Server.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if err := config.Assessment.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AssessmentConfig: %w", err))
	}

	if err := config.Alerts.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AlertsConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
