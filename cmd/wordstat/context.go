package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"wordstat/internal/config"
	"wordstat/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig(overrides config.Overrides) (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.configPath = resolved
		c.configExists = exists
		if err := cfg.ApplyOverrides(overrides); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig(config.Overrides{})
	return cfg
}

// logConfigSource records which configuration file, if any, the run used.
func (c *commandContext) logConfigSource(logger *slog.Logger) {
	logging.NewComponentLogger(logger, "config").Debug("configuration resolved",
		logging.String("config_path", c.configPath),
		logging.Bool("config_found", c.configExists),
	)
}

// ensureLogger builds the diagnostic logger once; output is the command's
// error stream so the report on stdout stays clean.
func (c *commandContext) ensureLogger(output io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.NewFromConfig(c.configValue(), output)
	})
	return c.logger, c.loggerErr
}
