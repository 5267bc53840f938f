package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Payment PaymentConfig
	Sweeper SweeperConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type PaymentConfig struct {
	// FailureRate is the simulated gateway's failure probability in [0,1].
	FailureRate float64
}

type SweeperConfig struct {
	Enabled         bool
	IntervalSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "seat-booking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PAYMENT_FAILURE_RATE", 0.2)
	viper.SetDefault("SWEEPER_ENABLED", true)
	viper.SetDefault("SWEEPER_INTERVAL_SECONDS", 60)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env just means defaults plus real env vars.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Payment: PaymentConfig{
			FailureRate: viper.GetFloat64("PAYMENT_FAILURE_RATE"),
		},
		Sweeper: SweeperConfig{
			Enabled:         viper.GetBool("SWEEPER_ENABLED"),
			IntervalSeconds: viper.GetInt("SWEEPER_INTERVAL_SECONDS"),
		},
	}

	return config, nil
}
