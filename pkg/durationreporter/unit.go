package durationreporter

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeUnit is the unit durations are displayed in. It never affects stored precision.
type TimeUnit time.Duration

const (
	Nanosecond  = TimeUnit(time.Nanosecond)
	Microsecond = TimeUnit(time.Microsecond)
	Millisecond = TimeUnit(time.Millisecond)
	Second      = TimeUnit(time.Second)
)

// Symbol is used in rendered reports, i.e. "ms".
func (u TimeUnit) Symbol() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "μs"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	default:
		return time.Duration(u).String()
	}
}

// Known reports whether u is one of the predefined units.
func (u TimeUnit) Known() bool {
	switch u {
	case Nanosecond, Microsecond, Millisecond, Second:
		return true
	}
	return false
}

func (u TimeUnit) String() string {
	return u.Symbol()
}

// PerSecond returns how many units fit in a second.
func (u TimeUnit) PerSecond() float64 {
	return float64(time.Second) / float64(u)
}

// Convert expresses d in the unit. The division happens in float64 so it never wraps.
func (u TimeUnit) Convert(d time.Duration) float64 {
	if u <= 0 {
		return float64(d)
	}
	return float64(d) / float64(u)
}

// Round returns d in the unit rounded to the nearest whole unit.
func (u TimeUnit) Round(d time.Duration) int64 {
	v := math.Round(u.Convert(d))
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ns", "nanosecond", "nanoseconds":
		return Nanosecond, nil
	case "us", "µs", "μs", "microsecond", "microseconds":
		return Microsecond, nil
	case "", "ms", "millisecond", "milliseconds":
		return Millisecond, nil
	case "s", "sec", "second", "seconds":
		return Second, nil
	}
	return 0, fmt.Errorf("unknown time unit %q", s)
}
