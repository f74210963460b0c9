package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DisplayFormats holds the optional pattern overrides for human-readable
// current date and time strings. An empty field means "not configured".
type DisplayFormats struct {
	Date     string `env:"DATE_FORMAT"`
	Time     string `env:"TIME_FORMAT"`
	DateTime string `env:"DATETIME_FORMAT"`
}

// LoadDisplayFormats reads the display format overrides from the live
// environment. Callers invoke it per use; the result is never cached.
func LoadDisplayFormats() (DisplayFormats, error) {
	var formats DisplayFormats
	if err := ParseEnv(&formats); err != nil {
		return DisplayFormats{}, err
	}
	return formats, nil
}
