package repository

import (
	"errors"
	"time"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blockedPeriodRepository struct{}

func NewBlockedPeriodRepository() domainRepo.BlockedPeriodRepository {
	return &blockedPeriodRepository{}
}

func (r *blockedPeriodRepository) Create(db *gorm.DB, period *entity.BlockedPeriod) error {
	return db.Create(period).Error
}

func (r *blockedPeriodRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BlockedPeriod, error) {
	var period entity.BlockedPeriod
	err := db.Where("id = ?", id).First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *blockedPeriodRepository) FindByAdminID(db *gorm.DB, adminID uuid.UUID) ([]entity.BlockedPeriod, error) {
	var periods []entity.BlockedPeriod
	err := db.Where("admin_user_id = ?", adminID).
		Order("start_at ASC").
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *blockedPeriodRepository) FindOverlappingRange(db *gorm.DB, adminID uuid.UUID, from, to time.Time) ([]entity.BlockedPeriod, error) {
	var periods []entity.BlockedPeriod
	err := db.Where("admin_user_id = ? AND start_at < ? AND end_at > ?", adminID, to, from).
		Order("start_at ASC").
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *blockedPeriodRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.BlockedPeriod{})
	return result.RowsAffected, result.Error
}
