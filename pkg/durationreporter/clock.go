package durationreporter

import (
	"time"

	"k8s.io/utils/clock"
)

// Clock supplies the instants actions are measured with. clock.RealClock reads time.Now, whose
// values carry a monotonic reading, so wall clock adjustments do not affect measured durations.
type Clock = clock.PassiveClock

// Elapsed returns end - begin. time.Time.Sub saturates at the time.Duration bounds, and a
// negative difference is reported as zero.
func Elapsed(begin, end time.Time) time.Duration {
	d := end.Sub(begin)
	if d < 0 {
		return 0
	}
	return d
}
