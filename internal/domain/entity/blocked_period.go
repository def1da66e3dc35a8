package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockedPeriod is an admin-declared span during which no slot may be booked,
// overriding the weekly rule (vacation, meetings). Compared against slots as
// a half-open interval.
type BlockedPeriod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdminUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_user_id"`
	StartAt     time.Time `gorm:"not null;index" json:"start_at"`
	EndAt       time.Time `gorm:"not null;index" json:"end_at"`
	Reason      string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Admin User `gorm:"foreignKey:AdminUserID" json:"admin,omitempty"`
}

func (BlockedPeriod) TableName() string {
	return "blocked_periods"
}
