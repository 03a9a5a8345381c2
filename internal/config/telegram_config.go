package config

import "github.com/spf13/viper"

// TelegramConfig is optional: the notifier bot starts only when a token is set.
type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

func (config TelegramConfig) Enabled() bool {
	return config.Token != ""
}

func (config TelegramConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("telegram.token", "TG_TOKEN")
}
