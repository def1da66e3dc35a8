package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/scheduling"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"
)

type AvailabilityRuleHandler struct {
	ruleUsecase usecase.AvailabilityRuleUsecase
	validator   *validator.CustomValidator
}

func NewAvailabilityRuleHandler(ruleUsecase usecase.AvailabilityRuleUsecase, validator *validator.CustomValidator) *AvailabilityRuleHandler {
	return &AvailabilityRuleHandler{
		ruleUsecase: ruleUsecase,
		validator:   validator,
	}
}

// GetMyRules handles getting the authenticated doctor's weekly rules
// @Summary Get availability rules
// @Description Get the authenticated doctor's weekly availability rules
// @Tags Availability Rules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/availability-rules [get]
func (h *AvailabilityRuleHandler) GetMyRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleUsecase.GetMyRules(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get availability rules")
		return
	}

	response.Success(w, http.StatusOK, "Availability rules retrieved successfully", rules)
}

// UpsertRules handles replacing the authenticated doctor's weekly rules
// @Summary Upsert availability rules
// @Description Create or update the authenticated doctor's per-weekday availability rules
// @Tags Availability Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertRulesRequest true "Upsert Rules Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/availability-rules [put]
func (h *AvailabilityRuleHandler) UpsertRules(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rules, err := h.ruleUsecase.UpsertRules(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateDayOfWeek):
			response.BadRequest(w, err.Error())
		case errors.Is(err, scheduling.ErrInvalidRule):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update availability rules")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability rules updated successfully", rules)
}
