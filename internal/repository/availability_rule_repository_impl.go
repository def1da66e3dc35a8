package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRuleRepository struct{}

func NewAvailabilityRuleRepository() domainRepo.AvailabilityRuleRepository {
	return &availabilityRuleRepository{}
}

func (r *availabilityRuleRepository) Upsert(db *gorm.DB, rule *entity.AvailabilityRule) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "admin_user_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "end_time", "slot_duration_minutes", "is_active", "updated_at",
		}),
	}).Create(rule).Error
}

func (r *availabilityRuleRepository) FindByAdminID(db *gorm.DB, adminID uuid.UUID) ([]entity.AvailabilityRule, error) {
	var rules []entity.AvailabilityRule
	err := db.Where("admin_user_id = ?", adminID).Order("day_of_week ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *availabilityRuleRepository) FindByAdminAndDay(db *gorm.DB, adminID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	var rule entity.AvailabilityRule
	err := db.Where("admin_user_id = ? AND day_of_week = ?", adminID, dayOfWeek).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *availabilityRuleRepository) CountByAdminID(db *gorm.DB, adminID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.AvailabilityRule{}).Where("admin_user_id = ?", adminID).Count(&count).Error
	return count, err
}
