package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	AdminUserID uuid.UUID
	StartAt     string            // Format: YYYY-MM-DD, inclusive lower bound on start_at
	EndAt       string            // Format: YYYY-MM-DD, inclusive upper bound on start_at
	Status      AppointmentStatus // Empty means all statuses
}
