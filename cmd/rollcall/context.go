package main

import (
	"log/slog"
	"strings"
	"sync"

	"rollcall/internal/config"
	"rollcall/internal/fetch"
	"rollcall/internal/logging"
	"rollcall/internal/mapping"
	"rollcall/internal/match"
	"rollcall/internal/scrape"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) extractor() (*scrape.Extractor, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return scrape.NewExtractor(logger), nil
}

func (c *commandContext) scorer() (*match.Scorer, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return match.NewScorer(logger), nil
}

func (c *commandContext) fetcher() (*fetch.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return fetch.NewClient(cfg, logger), nil
}

func (c *commandContext) withStore(fn func(*mapping.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := mapping.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}
