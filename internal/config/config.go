// Package config resolves runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/placement/internal/remediation"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvTopN         = "PLACEMENT_TOP_N"
	EnvLogLevel     = "PLACEMENT_LOG_LEVEL"
	EnvLogFormat    = "PLACEMENT_LOG_FORMAT"
	EnvQuestions    = "PLACEMENT_QUESTIONS"
	EnvReportFormat = "PLACEMENT_REPORT_FORMAT"
)

// Config holds the CLI's runtime settings.
type Config struct {
	// TopN is how many remediation topics a report recommends.
	TopN int

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string

	// LogFormat is "text" or "json".
	LogFormat string

	// QuestionsPath is the question set used when --questions is not given.
	QuestionsPath string

	// ReportFormat is one of "text", "json", "xlsx".
	ReportFormat string
}

// ReportFormats lists the supported report formats.
var ReportFormats = []string{"text", "json", "xlsx"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TopN:         remediation.DefaultTopN,
		LogLevel:     "info",
		LogFormat:    "text",
		ReportFormat: "text",
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvTopN); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not an integer", EnvTopN, v)
		}
		cfg.TopN = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvQuestions); v != "" {
		cfg.QuestionsPath = v
	}
	if v := os.Getenv(EnvReportFormat); v != "" {
		cfg.ReportFormat = strings.ToLower(v)
	}

	return cfg, nil
}

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.TopN <= 0 {
		errs = append(errs, fmt.Errorf("top N must be > 0, got %d", c.TopN))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format: %q", c.LogFormat))
	}
	if !validReportFormat(c.ReportFormat) {
		errs = append(errs, fmt.Errorf("unknown report format: %q (want %s)",
			c.ReportFormat, strings.Join(ReportFormats, ", ")))
	}

	return errors.Join(errs...)
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", name)
	}
}

func validReportFormat(f string) bool {
	for _, rf := range ReportFormats {
		if f == rf {
			return true
		}
	}
	return false
}
