package scheduling

import "time"

// DefaultMaxAdvanceDays bounds how far ahead a patient may book.
const DefaultMaxAdvanceDays = 60

// IsDateBookable reports whether a calendar day may be selected for booking:
// not before today (time of day ignored), on one of the admin's active
// weekdays, and at most maxAdvanceDays after today, inclusive. Fine-grained
// slot availability is Resolve's job; a bookable day can still resolve to
// zero available slots.
func IsDateBookable(date, today time.Time, activeDays map[time.Weekday]bool, maxAdvanceDays int) bool {
	d := truncateToDay(date)
	t := truncateToDay(today)

	if d.Before(t) {
		return false
	}
	if d.After(t.AddDate(0, 0, maxAdvanceDays)) {
		return false
	}
	return activeDays[d.Weekday()]
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
