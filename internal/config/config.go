// Package config loads the briefing configuration from the environment,
// with optional .env file support for local runs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mehdireddad/dailybrief/pkg/mailer"
	"github.com/mehdireddad/dailybrief/pkg/mailer/smtp"
)

// Config holds everything one briefing run needs. Missing API keys are not
// load errors: an unconfigured source degrades at fetch time instead.
type Config struct {
	OpenWeatherKey string `env:"OPENWEATHERMAP_API_KEY"`
	NewsAPIKey     string `env:"NEWSAPI_KEY"`
	WordnikKey     string `env:"WORDNIK_API_KEY"`

	SMTP       smtp.Config
	Mailer     mailer.Config
	SenderName string `env:"SENDER_NAME" envDefault:"Daily Briefing"`
	Recipient  string `env:"RECEIVER_EMAIL"`

	Cities   []string `env:"BRIEFING_CITIES" envSeparator:"," envDefault:"Casablanca,Paris,New York"`
	Schedule string   `env:"BRIEFING_SCHEDULE"`
	LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// DeliveryConfigured reports whether sender email, password, and recipient
// are all present. When false the briefing is built but not emailed.
func (c *Config) DeliveryConfigured() bool {
	return c.SMTP.Username != "" && c.SMTP.Password != "" && c.Recipient != ""
}
