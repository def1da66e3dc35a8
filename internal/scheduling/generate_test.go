package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-09 is a Monday.
var monday = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

func mondayRule(start, end TimeOfDay, duration time.Duration) DayRule {
	return DayRule{
		Weekday:      time.Monday,
		Start:        start,
		End:          end,
		SlotDuration: duration,
		Active:       true,
	}
}

func TestGenerateSlotsFullDay(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)

	slots, err := GenerateSlots(monday, rule)
	require.NoError(t, err)
	require.Len(t, slots, 16)

	assert.Equal(t, time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2025, 6, 9, 9, 30, 0, 0, time.UTC), slots[0].End)
	assert.Equal(t, time.Date(2025, 6, 9, 16, 30, 0, 0, time.UTC), slots[15].Start)
	assert.Equal(t, time.Date(2025, 6, 9, 17, 0, 0, 0, time.UTC), slots[15].End)

	for i, s := range slots {
		assert.True(t, s.Available, "slot %d should start out available", i)
		if i > 0 {
			assert.Equal(t, slots[i-1].End, s.Start, "slots must be contiguous")
		}
	}
}

func TestGenerateSlotsDropsTrailingPartial(t *testing.T) {
	// 09:00-10:45 with 30m slots: 09:00, 09:30, 10:00 fit; 10:30-11:00 spills
	// past the window end and is dropped.
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 10, Minute: 45}, 30*time.Minute)

	slots, err := GenerateSlots(monday, rule)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC), slots[2].End)
}

func TestGenerateSlotsDurationLargerThanWindow(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 9, Minute: 20}, 30*time.Minute)

	slots, err := GenerateSlots(monday, rule)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsStartEqualsEnd(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 9}, 30*time.Minute)

	slots, err := GenerateSlots(monday, rule)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsInactiveRule(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)
	rule.Active = false

	slots, err := GenerateSlots(monday, rule)
	require.NoError(t, err)
	assert.Nil(t, slots)
}

func TestGenerateSlotsWrongWeekday(t *testing.T) {
	rule := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)
	tuesday := monday.AddDate(0, 0, 1)

	slots, err := GenerateSlots(tuesday, rule)
	require.NoError(t, err)
	assert.Nil(t, slots)
}

func TestDayRuleValidate(t *testing.T) {
	valid := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 30*time.Minute)
	assert.NoError(t, valid.Validate())

	startAfterEnd := mondayRule(TimeOfDay{Hour: 17}, TimeOfDay{Hour: 9}, 30*time.Minute)
	assert.ErrorIs(t, startAfterEnd.Validate(), ErrInvalidRule)

	zeroDuration := mondayRule(TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}, 0)
	assert.ErrorIs(t, zeroDuration.Validate(), ErrInvalidRule)

	// Inactive rules are never generated from, so they skip validation.
	inactiveBroken := mondayRule(TimeOfDay{Hour: 17}, TimeOfDay{Hour: 9}, 0)
	inactiveBroken.Active = false
	assert.NoError(t, inactiveBroken.Validate())
}
