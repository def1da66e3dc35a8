package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ruleLike struct {
	StartTime string `validate:"required,hhmm"`
	DayOfWeek int    `validate:"gte=0,lte=6"`
}

func TestHHMMValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&ruleLike{StartTime: "09:00", DayOfWeek: 1}))
	assert.NoError(t, v.Validate(&ruleLike{StartTime: "23:59", DayOfWeek: 6}))
	assert.Error(t, v.Validate(&ruleLike{StartTime: "24:00", DayOfWeek: 1}))
	assert.Error(t, v.Validate(&ruleLike{StartTime: "9am", DayOfWeek: 1}))
	assert.Error(t, v.Validate(&ruleLike{StartTime: "09:00", DayOfWeek: 7}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&ruleLike{StartTime: "nope", DayOfWeek: 9})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "StartTime must be a time in HH:MM format", formatted["StartTime"])
	assert.Equal(t, "DayOfWeek must be less than or equal to 6", formatted["DayOfWeek"])
}
