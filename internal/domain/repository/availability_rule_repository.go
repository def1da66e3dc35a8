package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRuleRepository interface {
	// Upsert inserts or replaces the rule keyed by (admin, day of week).
	Upsert(db *gorm.DB, rule *entity.AvailabilityRule) error
	FindByAdminID(db *gorm.DB, adminID uuid.UUID) ([]entity.AvailabilityRule, error)
	FindByAdminAndDay(db *gorm.DB, adminID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error)
	// CountByAdminID distinguishes "admin never configured availability"
	// from "admin is off that day".
	CountByAdminID(db *gorm.DB, adminID uuid.UUID) (int64, error)
}
