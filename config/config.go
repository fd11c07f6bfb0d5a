// Package config loads gridroute settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvInputDir  = "GRIDROUTE_INPUT_DIR"
	EnvLogLevel  = "GRIDROUTE_LOG_LEVEL"
	EnvLogFormat = "GRIDROUTE_LOG_FORMAT"
)

// Supported log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrBadLogLevel indicates GRIDROUTE_LOG_LEVEL is not a logrus level.
	ErrBadLogLevel = errors.New("config: invalid log level")
	// ErrBadLogFormat indicates GRIDROUTE_LOG_FORMAT is neither text nor json.
	ErrBadLogFormat = errors.New("config: invalid log format")
)

// Config holds the CLI's configuration values.
type Config struct {
	InputDir  string       // Directory containing day<N>.txt inputs
	LogLevel  logrus.Level // Minimum level emitted
	LogFormat string       // "text" or "json"
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. A missing .env file is not an error; unset variables take
// their defaults.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	level, err := ParseLevel(getEnvWithDefault(EnvLogLevel, "info"))
	if err != nil {
		return Config{}, err
	}
	format := strings.ToLower(getEnvWithDefault(EnvLogFormat, FormatText))
	if format != FormatText && format != FormatJSON {
		return Config{}, fmt.Errorf("%w: %q", ErrBadLogFormat, format)
	}

	return Config{
		InputDir:  getEnvWithDefault(EnvInputDir, "inputs"),
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

// ParseLevel converts a level name such as "debug" to a logrus.Level.
func ParseLevel(s string) (logrus.Level, error) {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, s)
	}
	return level, nil
}

// Fields returns the configuration as log fields.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"input_dir":  c.InputDir,
		"log_level":  c.LogLevel.String(),
		"log_format": c.LogFormat,
	}
}

// Logger returns a logrus.Logger configured with the level and formatter.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(c.LogLevel)
	if c.LogFormat == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
