package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is a closed tag set. Only booked appointments occupy
// calendar capacity; keep OccupiesCapacity's switch exhaustive when adding a
// status.
type AppointmentStatus string

const (
	AppointmentStatusBooked             AppointmentStatus = "booked"
	AppointmentStatusCancelledByPatient AppointmentStatus = "cancelled_by_patient"
	AppointmentStatusCancelledByAdmin   AppointmentStatus = "cancelled_by_admin"
	AppointmentStatusCompleted          AppointmentStatus = "completed"
)

// Appointment represents a patient's booked slot on an admin's calendar.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientUserID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_user_id"`
	AdminUserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"admin_user_id"`
	StartAt        time.Time         `gorm:"not null;index" json:"start_at"`
	EndAt          time.Time         `gorm:"not null" json:"end_at"`
	ReasonForVisit string            `gorm:"type:text" json:"reason_for_visit,omitempty"`
	Status         AppointmentStatus `gorm:"type:appointment_status;not null;default:'booked';index" json:"status"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientUserID" json:"patient,omitempty"`
	Admin   User `gorm:"foreignKey:AdminUserID" json:"admin,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OccupiesCapacity reports whether the appointment blocks its time interval
// from new bookings.
func (s AppointmentStatus) OccupiesCapacity() bool {
	switch s {
	case AppointmentStatusBooked:
		return true
	case AppointmentStatusCancelledByPatient, AppointmentStatusCancelledByAdmin, AppointmentStatusCompleted:
		return false
	}
	return false
}

// IsBooked checks if the appointment is still active. Status changes go
// through the repository's conditional update, never through entity
// mutation, so concurrent transitions cannot both win.
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}
