package scheduling

import "time"

// Resolve computes the bookable slots for date. A nil rule means no rule
// exists for that day of the week and yields an empty sequence; callers are
// responsible for distinguishing "no doctor configured at all" before calling.
//
// A slot is unavailable when it overlaps any blocked interval, overlaps any
// booked interval, or has already started relative to now. Unavailable slots
// are kept in the result in chronological order so callers can render them
// disabled rather than hidden.
func Resolve(date time.Time, rule *DayRule, blocked, booked []Interval, now time.Time) ([]Slot, error) {
	if rule == nil {
		return nil, nil
	}

	slots, err := GenerateSlots(date, *rule)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		slots[i].Available = slotFree(slots[i], blocked, booked, now)
	}
	return slots, nil
}

func slotFree(s Slot, blocked, booked []Interval, now time.Time) bool {
	if !s.Start.After(now) {
		return false
	}
	for _, b := range blocked {
		if Overlaps(s.Start, s.End, b.Start, b.End) {
			return false
		}
	}
	for _, a := range booked {
		if Overlaps(s.Start, s.End, a.Start, a.End) {
			return false
		}
	}
	return true
}
