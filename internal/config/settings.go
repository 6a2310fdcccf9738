package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-wide defaults read from the environment.
// Command-line flags take precedence over these values.
type Settings struct {
	Format     string `env:"MORTGO_FORMAT" envDefault:"console"`
	Debug      bool   `env:"MORTGO_DEBUG" envDefault:"false"`
	ConfigFile string `env:"MORTGO_CONFIG"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
