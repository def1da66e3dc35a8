package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 9, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "identical intervals",
			aStart: at(9, 0), aEnd: at(9, 30),
			bStart: at(9, 0), bEnd: at(9, 30),
			expected: true,
		},
		{
			name:   "partial overlap",
			aStart: at(9, 0), aEnd: at(9, 30),
			bStart: at(9, 15), bEnd: at(9, 45),
			expected: true,
		},
		{
			name:   "containment",
			aStart: at(9, 0), aEnd: at(10, 0),
			bStart: at(9, 15), bEnd: at(9, 30),
			expected: true,
		},
		{
			name:   "touching end to start does not overlap",
			aStart: at(9, 0), aEnd: at(9, 30),
			bStart: at(9, 30), bEnd: at(10, 0),
			expected: false,
		},
		{
			name:   "touching start to end does not overlap",
			aStart: at(9, 30), aEnd: at(10, 0),
			bStart: at(9, 0), bEnd: at(9, 30),
			expected: false,
		},
		{
			name:   "disjoint",
			aStart: at(9, 0), aEnd: at(9, 30),
			bStart: at(11, 0), bEnd: at(11, 30),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
