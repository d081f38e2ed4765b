package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDates(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDates() error {
	if c.Dates.ReferenceYear < 0 {
		return errors.New("dates.reference_year must not be negative")
	}
	if c.Dates.ReferenceYear != 0 && (c.Dates.ReferenceYear < 1000 || c.Dates.ReferenceYear > 9999) {
		return fmt.Errorf("dates.reference_year must be a four-digit year, got %d", c.Dates.ReferenceYear)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// ReferenceYear resolves the configured reference year, falling back to the
// current calendar year when unset.
func (c *Config) ReferenceYear() int {
	if c.Dates.ReferenceYear > 0 {
		return c.Dates.ReferenceYear
	}
	return time.Now().Year()
}
