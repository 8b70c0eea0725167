package config

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Env holds the process settings that never appear in a
// settings file.
type Env struct {
	LogLevel  string `env:"LEAGUESIM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LEAGUESIM_LOG_FORMAT" envDefault:"text"`
	// Number of seasons a projection simulates in parallel
	Workers int `env:"LEAGUESIM_WORKERS" envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	if e.Workers < 1 {
		e.Workers = 1
	}
	return e, nil
}

// Creates the process logger writing to out
func (e Env) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(e.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch e.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", e.LogFormat)
	}

	return logger, nil
}
