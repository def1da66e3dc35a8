package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// RuleToResponse converts an AvailabilityRule entity to its response DTO
func RuleToResponse(rule *entity.AvailabilityRule) *dto.AvailabilityRuleResponse {
	if rule == nil {
		return nil
	}

	return &dto.AvailabilityRuleResponse{
		ID:                  rule.ID,
		AdminUserID:         rule.AdminUserID,
		DayOfWeek:           rule.DayOfWeek,
		StartTime:           rule.StartTime,
		EndTime:             rule.EndTime,
		SlotDurationMinutes: rule.SlotDurationMinutes,
		IsActive:            rule.IsActive,
		CreatedAt:           rule.CreatedAt,
		UpdatedAt:           rule.UpdatedAt,
	}
}

// RulesToResponses converts a slice of rules, preserving day order
func RulesToResponses(rules []entity.AvailabilityRule) []dto.AvailabilityRuleResponse {
	responses := make([]dto.AvailabilityRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *RuleToResponse(&rules[i])
	}
	return responses
}
