package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
// Missing required values abort startup.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`
	PasswordPepper string `env:"PASSWORD_PEPPER,required,notEmpty"`
	Port           string `env:"PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env when present, then parses the environment into a Config.
func Load() (Config, error) {
	// .env is a development convenience, so a missing file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
