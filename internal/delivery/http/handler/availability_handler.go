package handler

import (
	"net/http"

	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAdmins handles listing bookable doctors
// @Summary List doctors
// @Description List active doctor accounts that can be booked
// @Tags Availability
// @Produce json
// @Success 200 {object} response.Response
// @Router /admins [get]
func (h *AvailabilityHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.availabilityUsecase.GetAdmins(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", admins)
}

// GetWorkingDays handles getting a doctor's active weekdays
// @Summary Get working days
// @Description Get the weekdays a doctor accepts appointments on, plus the booking horizon
// @Tags Availability
// @Produce json
// @Param adminId path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{adminId}/working-days [get]
func (h *AvailabilityHandler) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	adminID, err := uuid.Parse(mux.Vars(r)["adminId"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	days, err := h.availabilityUsecase.GetWorkingDays(r.Context(), adminID)
	if err != nil {
		switch err {
		case usecase.ErrAdminNotConfigured:
			response.NotFound(w, "Doctor is not configured")
		default:
			response.InternalServerError(w, "Failed to get working days")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working days retrieved successfully", days)
}

// GetDaySlots handles resolving a doctor's slots for a date
// @Summary Get slots for a date
// @Description Resolve the full slot list, available and unavailable, for one doctor on one date
// @Tags Availability
// @Produce json
// @Param adminId path string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{adminId}/slots [get]
func (h *AvailabilityHandler) GetDaySlots(w http.ResponseWriter, r *http.Request) {
	adminID, err := uuid.Parse(mux.Vars(r)["adminId"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	slots, err := h.availabilityUsecase.GetDaySlots(r.Context(), adminID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		case usecase.ErrAdminNotConfigured:
			response.NotFound(w, "Doctor is not configured")
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
