package config

import "fmt"

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

func (config ServerConfig) validate() error {
	if config.Port <= 0 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}
	if config.MetricsPort <= 0 {
		return fmt.Errorf("invalid metrics_port: %d", config.MetricsPort)
	}
	if config.Port == config.MetricsPort {
		return fmt.Errorf("port and metrics_port must differ")
	}
	return nil
}
