package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// DayRuleRequest is one weekday's configuration inside a bulk upsert.
type DayRuleRequest struct {
	DayOfWeek           int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime           string `json:"start_time" validate:"required,hhmm"`
	EndTime             string `json:"end_time" validate:"required,hhmm"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"required,gte=5,lte=480"`
	IsActive            bool   `json:"is_active"`
}

// UpsertRulesRequest replaces the weekly configuration in one call, the way
// the admin settings screen submits it.
type UpsertRulesRequest struct {
	Rules []DayRuleRequest `json:"rules" validate:"required,min=1,max=7,dive"`
}

// Response DTOs

type AvailabilityRuleResponse struct {
	ID                  uuid.UUID `json:"id"`
	AdminUserID         uuid.UUID `json:"admin_user_id"`
	DayOfWeek           int       `json:"day_of_week"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type AvailabilityRuleListResponse struct {
	Rules []AvailabilityRuleResponse `json:"rules"`
	Total int                        `json:"total"`
}
