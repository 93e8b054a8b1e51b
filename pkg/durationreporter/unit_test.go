package durationreporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeUnit
		wantErr  bool
	}{
		{input: "ns", expected: Nanosecond},
		{input: "Nanoseconds", expected: Nanosecond},
		{input: "us", expected: Microsecond},
		{input: "μs", expected: Microsecond},
		{input: "µs", expected: Microsecond},
		{input: "", expected: Millisecond},
		{input: " ms ", expected: Millisecond},
		{input: "second", expected: Second},
		{input: "s", expected: Second},
		{input: "fortnight", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeUnit_Conversions(t *testing.T) {
	d := 1500 * time.Microsecond

	assert.Equal(t, int64(1500000), Nanosecond.Round(d))
	assert.Equal(t, int64(1500), Microsecond.Round(d))
	assert.Equal(t, int64(2), Millisecond.Round(d))
	assert.Equal(t, int64(0), Second.Round(d))

	assert.Equal(t, 1.5, Millisecond.Convert(d))
	assert.Equal(t, 1000.0, Millisecond.PerSecond())
	assert.Equal(t, 1e6, Microsecond.PerSecond())
	assert.Equal(t, 1e9, Nanosecond.PerSecond())
	assert.Equal(t, 1.0, Second.PerSecond())

	assert.Equal(t, "ns", Nanosecond.Symbol())
	assert.Equal(t, "μs", Microsecond.Symbol())
	assert.Equal(t, "ms", Millisecond.String())
	assert.Equal(t, "s", Second.Symbol())
}

func TestTimeUnit_ConvertDoesNotWrap(t *testing.T) {
	huge := time.Duration(1<<63 - 1)
	require.Positive(t, Nanosecond.Convert(huge))
	require.Positive(t, Second.Round(huge))
}

func TestTimeUnit_RoundSaturates(t *testing.T) {
	require.Equal(t, int64(1<<63-1), Nanosecond.Round(time.Duration(1<<63-1)))
}
