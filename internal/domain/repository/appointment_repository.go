package repository

import (
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindBookedInRange returns booked appointments intersecting [from, to)
	// on the admin's calendar.
	FindBookedInRange(db *gorm.DB, adminID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	CountOverlappingBooked(db *gorm.DB, adminID uuid.UUID, start, end time.Time) (int64, error)
	FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// TransitionStatus updates status only when the row still holds from.
	// Returns affected rows: 0 means a concurrent transition won.
	TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
}
