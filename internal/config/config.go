package config

import "github.com/spf13/viper"

// Config holds the runtime configuration. Values come from the environment
// (a .env file loaded by main counts), with defaults suitable for local
// development.
type Config struct {
	Port          string
	DatabaseDSN   string
	Env           string
	SessionSecret string
	LogLevel      string
	SMTP          SMTP
}

// SMTP configures the outbound mail transport for the contact form.
// To is the inbox contact messages are delivered to.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Load reads configuration from the environment with defaults.
func Load() Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_DSN", "data.db")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SESSION_SECRET", "devsessionsecret")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "portfolio@localhost")
	viper.SetDefault("SMTP_TO", "owner@localhost")
	viper.AutomaticEnv()

	return Config{
		Port:          viper.GetString("PORT"),
		DatabaseDSN:   viper.GetString("DATABASE_DSN"),
		Env:           viper.GetString("APP_ENV"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		SMTP: SMTP{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
			To:       viper.GetString("SMTP_TO"),
		},
	}
}
