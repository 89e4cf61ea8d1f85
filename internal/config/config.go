package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug           bool
	Rates           string
	FixedRate       string
	DefaultCurrency string
}

var config *Config

func GetConfig() *Config {
	if config != nil {
		return config
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on the environment")
	}

	viper.SetEnvPrefix("bank")
	viper.AutomaticEnv()
	viper.SetDefault("debug", false)
	viper.SetDefault("rates", "USD:1.1;EUR:0.9;UAH:38")
	viper.SetDefault("fixed_rate", "0.5")
	viper.SetDefault("default_currency", "USD")

	config = &Config{
		Debug:           viper.GetBool("debug"),
		Rates:           viper.GetString("rates"),
		FixedRate:       viper.GetString("fixed_rate"),
		DefaultCurrency: viper.GetString("default_currency"),
	}

	if config.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Debug("configuration parameters",
		"BANK_DEBUG", config.Debug,
		"BANK_RATES", config.Rates,
		"BANK_FIXED_RATE", config.FixedRate,
		"BANK_DEFAULT_CURRENCY", config.DefaultCurrency)

	return config
}
