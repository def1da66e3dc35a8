package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)
	assert.Equal(t, "09:30", tod.String())
	assert.Equal(t, 570, tod.Minutes())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("9am")
	assert.Error(t, err)
}

func TestTimeOfDayOn(t *testing.T) {
	tod := TimeOfDay{Hour: 14, Minute: 15}
	date := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)

	anchored := tod.On(date)
	assert.Equal(t, time.Date(2025, 6, 9, 14, 15, 0, 0, time.UTC), anchored)
}
