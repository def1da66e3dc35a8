package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusOccupiesCapacity(t *testing.T) {
	assert.True(t, AppointmentStatusBooked.OccupiesCapacity())
	assert.False(t, AppointmentStatusCancelledByPatient.OccupiesCapacity())
	assert.False(t, AppointmentStatusCancelledByAdmin.OccupiesCapacity())
	assert.False(t, AppointmentStatusCompleted.OccupiesCapacity())
}

func TestAppointmentIsBooked(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentStatusBooked}).IsBooked())
	assert.False(t, (&Appointment{Status: AppointmentStatusCancelledByPatient}).IsBooked())
	assert.False(t, (&Appointment{Status: AppointmentStatusCancelledByAdmin}).IsBooked())
	assert.False(t, (&Appointment{Status: AppointmentStatusCompleted}).IsBooked())
}
