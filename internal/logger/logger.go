package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging keyed by component
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// ParseLevel maps config values such as "debug" or "WARN" to a zerolog level
func ParseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", raw)
	}
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Info(component, message string, fields map[string]interface{})    {}
func (NopLogger) Error(component string, err error, fields map[string]interface{}) {}
func (NopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NopLogger) Debug(component, message string, fields map[string]interface{})   {}
