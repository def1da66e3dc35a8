package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBlockedPeriodRequest struct {
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
	Reason  string    `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type BlockedPeriodResponse struct {
	ID          uuid.UUID `json:"id"`
	AdminUserID uuid.UUID `json:"admin_user_id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BlockedPeriodListResponse struct {
	BlockedPeriods []BlockedPeriodResponse `json:"blocked_periods"`
	Total          int                     `json:"total"`
}
