package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProvider(); err != nil {
		return err
	}
	if err := c.validateSolver(); err != nil {
		return err
	}
	if err := c.validateMapping(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateProvider() error {
	if c.Provider.BaseURL == "" {
		return errors.New("provider.base_url must be set")
	}
	parsed, err := url.Parse(c.Provider.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("provider.base_url %q is not an absolute URL", c.Provider.BaseURL)
	}
	return nil
}

func (c *Config) validateSolver() error {
	if !c.Solver.Enabled {
		return nil
	}
	if c.Solver.URL == "" {
		return errors.New("solver.url must be set when solver.enabled is true (or export ROLLCALL_SOLVER_URL)")
	}
	parsed, err := url.Parse(c.Solver.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("solver.url %q is not an absolute URL", c.Solver.URL)
	}
	return nil
}

func (c *Config) validateMapping() error {
	if strings.TrimSpace(c.Mapping.DBPath) == "" {
		return errors.New("mapping.db_path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
}
