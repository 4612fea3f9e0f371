package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg is the globally accessible configuration instance.
var Cfg *Config

// LoadConfig reads the yaml config file and fills Cfg.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setStatsDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// setStatsDefaults keeps the business date windows explicit and overridable
// instead of burying them as function defaults.
func setStatsDefaults() {
	viper.SetDefault("stats.dashboard_window_days", 30)
	viper.SetDefault("stats.detail_window_days", 7)
	viper.SetDefault("stats.retention_days", 365)
	viper.SetDefault("stats.top_products_default", 10)
	viper.SetDefault("stats.rollup_workers", 8)
	viper.SetDefault("sync.log_retention_days", 30)
}
