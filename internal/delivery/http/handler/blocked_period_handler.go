package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BlockedPeriodHandler struct {
	blockedUsecase usecase.BlockedPeriodUsecase
	validator      *validator.CustomValidator
}

func NewBlockedPeriodHandler(blockedUsecase usecase.BlockedPeriodUsecase, validator *validator.CustomValidator) *BlockedPeriodHandler {
	return &BlockedPeriodHandler{
		blockedUsecase: blockedUsecase,
		validator:      validator,
	}
}

// CreateBlockedPeriod handles creating a blocked period
// @Summary Create blocked period
// @Description Block a time range so no appointments can be booked inside it
// @Tags Blocked Periods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockedPeriodRequest true "Create Blocked Period Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/blocked-periods [post]
func (h *BlockedPeriodHandler) CreateBlockedPeriod(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlockedPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blocked, err := h.blockedUsecase.CreateBlockedPeriod(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBlockedPeriod:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create blocked period")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blocked period created successfully", blocked)
}

// GetMyBlockedPeriods handles listing the authenticated doctor's blocked periods
// @Summary List blocked periods
// @Description List the authenticated doctor's blocked periods
// @Tags Blocked Periods
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/blocked-periods [get]
func (h *BlockedPeriodHandler) GetMyBlockedPeriods(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.blockedUsecase.GetMyBlockedPeriods(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blocked periods")
		return
	}

	response.Success(w, http.StatusOK, "Blocked periods retrieved successfully", blocked)
}

// DeleteBlockedPeriod handles deleting a blocked period
// @Summary Delete blocked period
// @Description Delete one of the authenticated doctor's blocked periods
// @Tags Blocked Periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Blocked Period ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/blocked-periods/{id} [delete]
func (h *BlockedPeriodHandler) DeleteBlockedPeriod(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid blocked period ID")
		return
	}

	if err := h.blockedUsecase.DeleteBlockedPeriod(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBlockedPeriodNotFound:
			response.NotFound(w, "Blocked period not found")
		case usecase.ErrBlockedPeriodNotOwned:
			response.Forbidden(w, "Blocked period does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete blocked period")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blocked period deleted successfully", nil)
}
