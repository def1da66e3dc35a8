package repository

import (
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlockedPeriodRepository interface {
	Create(db *gorm.DB, period *entity.BlockedPeriod) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BlockedPeriod, error)
	FindByAdminID(db *gorm.DB, adminID uuid.UUID) ([]entity.BlockedPeriod, error)
	// FindOverlappingRange returns periods intersecting [from, to).
	FindOverlappingRange(db *gorm.DB, adminID uuid.UUID, from, to time.Time) ([]entity.BlockedPeriod, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
