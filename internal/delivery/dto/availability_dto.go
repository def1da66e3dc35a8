package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs for the public availability endpoints.

type AdminResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type AdminListResponse struct {
	Admins []AdminResponse `json:"admins"`
	Total  int             `json:"total"`
}

type WorkingDaysResponse struct {
	AdminID uuid.UUID `json:"admin_id"`
	// Days of week with an active rule, 0 = Sunday.
	ActiveDays     []int `json:"active_days"`
	MaxAdvanceDays int   `json:"max_advance_days"`
}

type SlotResponse struct {
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	IsAvailable bool      `json:"is_available"`
}

type DaySlotsResponse struct {
	AdminID uuid.UUID      `json:"admin_id"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}
