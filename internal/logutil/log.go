package logutil

import (
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the global logger
type Config struct {
	Level  string `json:"level" yaml:"level"`
	File   string `json:"file" yaml:"file"`
	Format string `json:"format" yaml:"format"`
}

// DefaultConfig logs warnings and above as text to stderr
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "text"}
}

// Adjust fills empty fields with defaults
func (c *Config) Adjust() {
	defaults := DefaultConfig()
	if c.Level == "" {
		c.Level = defaults.Level
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	c.Level = strings.ToLower(c.Level)
}

// InitLogger builds a logger from cfg and installs it globally
func InitLogger(cfg *Config, opts ...zap.Option) error {
	cfg.Adjust()
	if _, err := parseLevel(cfg.Level); err != nil {
		return err
	}
	logger, props, err := log.InitLogger(&log.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
		File:   log.FileLogConfig{Filename: cfg.File},
	}, opts...)
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(logger, props)
	return nil
}

// SetLogLevel changes the level of the global logger
func SetLogLevel(level string) error {
	parsed, err := parseLevel(level)
	if err != nil {
		return err
	}
	if parsed != log.GetLevel() {
		log.SetLevel(parsed)
	}
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	var ret zapcore.Level
	if err := ret.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return ret, errors.Annotatef(err, "invalid log level %q", level)
	}
	return ret, nil
}
