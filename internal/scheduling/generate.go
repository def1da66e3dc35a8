package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRule marks an availability rule that cannot produce slots:
// a non-positive slot duration, or a start time after the end time on an
// active rule. Generation fails fast instead of looping.
var ErrInvalidRule = errors.New("invalid availability rule")

// DayRule is the weekly recurring availability configuration for one day of
// the week, already parsed from its stored form.
type DayRule struct {
	Weekday      time.Weekday
	Start        TimeOfDay
	End          TimeOfDay
	SlotDuration time.Duration
	Active       bool
}

// Validate checks the invariants an active rule must satisfy.
func (r DayRule) Validate() error {
	if !r.Active {
		return nil
	}
	if r.SlotDuration <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %s", ErrInvalidRule, r.SlotDuration)
	}
	if r.Start.Minutes() > r.End.Minutes() {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidRule, r.Start, r.End)
	}
	return nil
}

// GenerateSlots produces the ordered candidate slots for date under rule.
// An inactive rule, or a rule for a different weekday, yields no slots.
// Slots are stepped by the rule's duration from the window start; a trailing
// span shorter than one full slot is dropped, never padded. Every generated
// slot starts out available; Resolve marks them.
func GenerateSlots(date time.Time, rule DayRule) ([]Slot, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if !rule.Active || rule.Weekday != date.Weekday() {
		return nil, nil
	}

	windowStart := rule.Start.On(date)
	windowEnd := rule.End.On(date)

	var slots []Slot
	for cursor := windowStart; !cursor.Add(rule.SlotDuration).After(windowEnd); cursor = cursor.Add(rule.SlotDuration) {
		slots = append(slots, Slot{
			Start:     cursor,
			End:       cursor.Add(rule.SlotDuration),
			Available: true,
		})
	}
	return slots, nil
}
