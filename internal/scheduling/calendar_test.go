package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDateBookable(t *testing.T) {
	// Monday, with a late wall-clock time to prove only the date matters.
	today := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)
	weekdaysOnly := map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "today is bookable even late in the day",
			date:     time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "tomorrow",
			date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "yesterday",
			date:     time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "saturday is not an active day",
			date:     time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			// 2025-08-08 is exactly today + 60 days, a Friday.
			name:     "boundary day is bookable",
			date:     time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			// One past the horizon; still a weekday.
			name:     "day past the horizon is not bookable",
			date:     time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDateBookable(tt.date, today, weekdaysOnly, DefaultMaxAdvanceDays)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsDateBookableNoActiveDays(t *testing.T) {
	today := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsDateBookable(today, today, nil, DefaultMaxAdvanceDays))
	assert.False(t, IsDateBookable(today, today, map[time.Weekday]bool{}, DefaultMaxAdvanceDays))
}
