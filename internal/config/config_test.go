package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	Reset()
	t.Cleanup(func() {
		viper.Reset()
		Reset()
	})
}

func TestConfig(t *testing.T) {
	reset(t)
	t.Setenv("LOG_LEVEL", "5")
	t.Setenv("REPORT_UNIT", "μs")
	t.Setenv("REPORT_FORMAT", "TABLE")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("DEMO_SCALE", "0.5")

	cfg := Get()

	require.Equal(t, 5, cfg.Log.Level)
	require.Equal(t, "us", cfg.Report.Unit)
	require.Equal(t, "table", cfg.Report.Format)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, 0.5, cfg.Demo.Scale)
}

func TestConfig_Defaults(t *testing.T) {
	reset(t)

	cfg := Get()

	require.Equal(t, 4, cfg.Log.Level)
	require.Equal(t, "ms", cfg.Report.Unit)
	require.Equal(t, "text", cfg.Report.Format)
	require.False(t, cfg.Metrics.Enabled)
	require.Equal(t, 1.0, cfg.Demo.Scale)
}

func TestConfig_IsMemoized(t *testing.T) {
	reset(t)
	t.Setenv("REPORT_UNIT", "s")
	require.Equal(t, "s", Get().Report.Unit)

	t.Setenv("REPORT_UNIT", "ns")
	require.Equal(t, "s", Get().Report.Unit)
}

func TestConfig_Invalid(t *testing.T) {
	tests := map[string]struct {
		env   string
		value string
	}{
		"unit":   {env: "REPORT_UNIT", value: "fortnight"},
		"format": {env: "REPORT_FORMAT", value: "xml"},
		"scale":  {env: "DEMO_SCALE", value: "-1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reset(t)
			t.Setenv(tt.env, tt.value)

			require.Panics(t, func() { Get() })
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "nanoseconds", expected: "ns"},
		{input: "µs", expected: "us"},
		{input: "μs", expected: "us"},
		{input: "", expected: "ms"},
		{input: "Millisecond", expected: "ms"},
		{input: "seconds", expected: "s"},
		{input: "h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}
