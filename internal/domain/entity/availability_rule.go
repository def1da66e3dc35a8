package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is the weekly recurring availability configuration for one
// day of week. One rule per (admin, day of week); an inactive rule means the
// admin does not see patients on that day.
type AvailabilityRule struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdminUserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rules_admin_day" json:"admin_user_id"`
	DayOfWeek           int       `gorm:"not null;uniqueIndex:idx_rules_admin_day" json:"day_of_week"`
	StartTime           string    `gorm:"type:time;not null" json:"start_time"`
	EndTime             string    `gorm:"type:time;not null" json:"end_time"`
	SlotDurationMinutes int       `gorm:"not null;default:30" json:"slot_duration_minutes"`
	IsActive            bool      `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Admin User `gorm:"foreignKey:AdminUserID" json:"admin,omitempty"`
}

func (AvailabilityRule) TableName() string {
	return "availability_rules"
}

// Weekday converts the stored 0..6 day of week (Sunday = 0, matching
// time.Weekday) to its time package representation.
func (r *AvailabilityRule) Weekday() time.Weekday {
	return time.Weekday(r.DayOfWeek)
}
