package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNilRuleIsDayOff(t *testing.T) {
	slots, err := Resolve(monday, nil, nil, nil, monday)
	require.NoError(t, err)
	assert.Nil(t, slots)
}

func TestResolveMarksBookedSlot(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)
	booked := []Interval{
		{
			Start: time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC),
		},
	}
	// Well before the window opens, so no slot is past.
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	slots, err := Resolve(monday, &rule, nil, booked, now)
	require.NoError(t, err)
	require.Len(t, slots, 16)

	byStart := slotsByStartHourMinute(slots)
	assert.False(t, byStart["10:00"].Available)
	// Touching neighbors stay available: intervals are half-open.
	assert.True(t, byStart["09:30"].Available)
	assert.True(t, byStart["10:30"].Available)
}

func TestResolveMarksPartialBlockOverlap(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)
	blocked := []Interval{
		{
			Start: time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 9, 9, 15, 0, 0, time.UTC),
		},
	}
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	slots, err := Resolve(monday, &rule, blocked, nil, now)
	require.NoError(t, err)

	byStart := slotsByStartHourMinute(slots)
	assert.False(t, byStart["09:00"].Available, "any overlap with a block disqualifies the whole slot")
	assert.True(t, byStart["09:30"].Available)
}

func TestResolveMarksPastSlots(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)
	// Mid-morning: everything up to and including the 10:00 slot has started.
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	slots, err := Resolve(monday, &rule, nil, nil, now)
	require.NoError(t, err)

	byStart := slotsByStartHourMinute(slots)
	assert.False(t, byStart["09:30"].Available)
	// A slot starting exactly now is not bookable.
	assert.False(t, byStart["10:00"].Available)
	assert.True(t, byStart["10:30"].Available)
}

func TestResolveKeepsUnavailableSlotsInOrder(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 11}, 30*time.Minute)
	booked := []Interval{
		{
			Start: time.Date(2025, 6, 9, 9, 30, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC),
		},
	}
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	slots, err := Resolve(monday, &rule, nil, booked, now)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	assert.Equal(t, 3, available)
}

func TestResolveInvalidRule(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 17}, TimeOfDay{Hour: 9}, 30*time.Minute)

	_, err := Resolve(monday, &rule, nil, nil, monday)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func slotsByStartHourMinute(slots []Slot) map[string]Slot {
	m := make(map[string]Slot, len(slots))
	for _, s := range slots {
		m[s.Start.Format("15:04")] = s
	}
	return m
}
