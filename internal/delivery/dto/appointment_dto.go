package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	AdminUserID    uuid.UUID `json:"admin_user_id" validate:"required"`
	StartAt        time.Time `json:"start_at" validate:"required"`
	EndAt          time.Time `json:"end_at" validate:"required"`
	ReasonForVisit string    `json:"reason_for_visit" validate:"omitempty,max=1000"`
}

// ListAppointmentsQuery mirrors the admin listing filters.
type ListAppointmentsQuery struct {
	StartAt string `json:"start_at" validate:"omitempty,datetime=2006-01-02"`
	EndAt   string `json:"end_at" validate:"omitempty,datetime=2006-01-02"`
	Status  string `json:"status" validate:"omitempty,oneof=booked cancelled_by_patient cancelled_by_admin completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientUserID  uuid.UUID `json:"patient_user_id"`
	AdminUserID    uuid.UUID `json:"admin_user_id"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	ReasonForVisit string    `json:"reason_for_visit,omitempty"`
	Status         string    `json:"status"`
	PatientName    string    `json:"patient_name,omitempty"`
	AdminName      string    `json:"admin_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
