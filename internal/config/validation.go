package config

import (
	"fmt"
	"strings"

	"github.com/ktustanowski/durationreporter/pkg/durationreporter"
)

// normalizeUnit accepts any spelling durationreporter.ParseTimeUnit understands and returns the
// canonical ASCII symbol, so "μs", "µs" and "microseconds" all become "us".
func normalizeUnit(value string) (string, error) {
	unit, err := durationreporter.ParseTimeUnit(value)
	if err != nil {
		return "", err
	}
	switch unit {
	case durationreporter.Nanosecond:
		return "ns", nil
	case durationreporter.Microsecond:
		return "us", nil
	case durationreporter.Second:
		return "s", nil
	default:
		return "ms", nil
	}
}

func normalizeFormat(value string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(value))
	if format == "" {
		return "text", nil
	}
	if _, err := durationreporter.GeneratorFor(format); err != nil {
		return "", fmt.Errorf("expected one of text, table, json: %w", err)
	}
	return format, nil
}
