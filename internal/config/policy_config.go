package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type PolicyConfig struct {
	UniqueApplicationPerJob bool `mapstructure:"unique_application_per_job"`
	ForwardOnlyStatus       bool `mapstructure:"forward_only_status"`
}

func (config PolicyConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("policy.unique_application_per_job", "UNIQUE_APPLICATION_PER_JOB"); err != nil {
		return err
	}
	return viper.BindEnv("policy.forward_only_status", "FORWARD_ONLY_STATUS")
}

type AssessmentConfig struct {
	PendingTTL time.Duration `mapstructure:"pending_ttl"`
}

func (config AssessmentConfig) validate() error {
	if config.PendingTTL <= 0 {
		return fmt.Errorf("pending_ttl must be positive")
	}
	return nil
}

type AlertsConfig struct {
	DailySchedule  string `mapstructure:"daily_schedule"`
	WeeklySchedule string `mapstructure:"weekly_schedule"`
}

func (config AlertsConfig) validate() error {
	if _, err := cron.ParseStandard(config.DailySchedule); err != nil {
		return fmt.Errorf("daily_schedule: %w", err)
	}
	if _, err := cron.ParseStandard(config.WeeklySchedule); err != nil {
		return fmt.Errorf("weekly_schedule: %w", err)
	}
	return nil
}
