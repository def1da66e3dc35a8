package repository

import (
	"errors"
	"time"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Admin").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Admin").
		Where("patient_user_id = ?", patientID).
		Order("start_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedInRange(db *gorm.DB, adminID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("admin_user_id = ? AND status = ? AND start_at < ? AND end_at > ?",
		adminID, entity.AppointmentStatusBooked, to, from).
		Order("start_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountOverlappingBooked(db *gorm.DB, adminID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("admin_user_id = ? AND status = ? AND start_at < ? AND end_at > ?",
			adminID, entity.AppointmentStatusBooked, end, start).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient")

	if filter != nil {
		if filter.AdminUserID != uuid.Nil {
			query = query.Where("admin_user_id = ?", filter.AdminUserID)
		}
		if filter.StartAt != "" {
			query = query.Where("start_at >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			// Inclusive upper bound on the calendar day.
			query = query.Where("start_at < (?::date + interval '1 day')", filter.EndAt)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	err := query.Order("start_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// TransitionStatus atomically moves an appointment between statuses ONLY if
// it still holds the expected one. Returns affected rows: 1 = success,
// 0 = a concurrent transition won (prevents double-cancel race).
func (r *appointmentRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
