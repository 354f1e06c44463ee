package habits

import "time"

// Clock supplies the current wall-clock time. The service takes one so state
// transitions can be driven by a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the host clock.
var SystemClock Clock = systemClock{}

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// Millis converts a time to Unix epoch milliseconds, the unit all habit
// timestamps are stored in.
func Millis(t time.Time) int64 { return t.UnixMilli() }
