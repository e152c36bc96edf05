package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeProvider()
	c.normalizeSolver()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Mapping.DBPath, err = ExpandPath(c.Mapping.DBPath); err != nil {
		return fmt.Errorf("mapping.db_path: %w", err)
	}
	if c.Logging.LogDir, err = ExpandPath(c.Logging.LogDir); err != nil {
		return fmt.Errorf("logging.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeProvider() {
	c.Provider.BaseURL = strings.TrimRight(strings.TrimSpace(c.Provider.BaseURL), "/")
	c.Provider.Language = strings.TrimSpace(c.Provider.Language)
	if c.Provider.Language == "" {
		c.Provider.Language = defaultProviderLanguage
	}
	if c.Provider.RequestTimeout <= 0 {
		c.Provider.RequestTimeout = defaultProviderRequestTimeout
	}
	if c.Provider.MaxRetries < 0 {
		c.Provider.MaxRetries = 0
	}
	if strings.TrimSpace(c.Provider.UserAgent) == "" {
		c.Provider.UserAgent = defaultProviderUserAgent
	}
}

func (c *Config) normalizeSolver() {
	c.Solver.URL = strings.TrimRight(strings.TrimSpace(c.Solver.URL), "/")
	if c.Solver.RequestTimeout <= 0 {
		c.Solver.RequestTimeout = defaultSolverRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
