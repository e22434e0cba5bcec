package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

// Config holds the CLI's environment settings.
type Config struct {
	// InputPath is the setup file read when estimate gets no argument.
	InputPath string `envconfig:"DEADLINE_INPUT"`
	// Locale is a BCP 47 tag used for currency symbols and number grouping.
	Locale   string `envconfig:"DEADLINE_LOCALE"`
	LogCalls bool   `envconfig:"DEADLINE_LOG_CALLS"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		InputPath: "input.json",
		Locale:    "en-GB",
	}
}

// LoadConfig reads configuration from the environment. Unset variables keep
// their DefaultConfig values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if _, err := cfg.LanguageTag(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LanguageTag parses Locale.
func (c Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("DEADLINE_LOCALE %q: %w", c.Locale, err)
	}
	return tag, nil
}
