package scheduling

import "time"

// Slot is a candidate appointment window for one day. Slots are derived on
// every resolution and never persisted.
type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Interval is an occupied span of time (a blocked period or a booked
// appointment) compared against slots as a half-open interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Intervals that merely touch
// (aEnd == bStart) do not overlap. Callers must pass well-formed intervals
// (start before end).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
