package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"go.dw1.io/regextoolbox/builder"
)

var errConfig = errors.New("regexbuild: invalid configuration")

// config is read from the environment, after loading any .env files.
type config struct {
	LogLevel  string `env:"REGEXBUILD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"REGEXBUILD_LOG_FORMAT" envDefault:"text"`
	LogPrefix string `env:"REGEXBUILD_LOG_PREFIX" envDefault:"RegexBuilder"`
	// Trace logs every builder operation at debug level.
	Trace bool `env:"REGEXBUILD_TRACE"`
}

// loadConfig loads the given .env files, or ./.env if it exists when none
// are given, then parses the environment. Variables already set in the
// environment win over .env values.
func loadConfig(envFiles ...string) (config, error) {
	var cfg config

	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return cfg, errors.Join(errConfig, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(errConfig, err)
	}

	return cfg, nil
}

func (c config) level() (slog.Level, error) {
	if c.Trace {
		return slog.LevelDebug, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log level %q", errConfig, c.LogLevel)
	}

	return l, nil
}

// logger returns the slog logger described by c, writing to w.
func (c config) logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", errConfig, c.LogFormat)
	}
}

// builderOptions wires the builder's logging hook to l when tracing.
func (c config) builderOptions(l *slog.Logger) []builder.Option {
	if !c.Trace {
		return nil
	}

	return []builder.Option{
		builder.WithLogger(builder.SlogLogger(l, slog.LevelDebug)),
		builder.WithLogPrefix(c.LogPrefix),
	}
}
