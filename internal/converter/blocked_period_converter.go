package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// BlockedPeriodToResponse converts a BlockedPeriod entity to its response DTO
func BlockedPeriodToResponse(period *entity.BlockedPeriod) *dto.BlockedPeriodResponse {
	if period == nil {
		return nil
	}

	return &dto.BlockedPeriodResponse{
		ID:          period.ID,
		AdminUserID: period.AdminUserID,
		StartAt:     period.StartAt,
		EndAt:       period.EndAt,
		Reason:      period.Reason,
		CreatedAt:   period.CreatedAt,
	}
}

// BlockedPeriodsToResponses converts a slice of blocked periods
func BlockedPeriodsToResponses(periods []entity.BlockedPeriod) []dto.BlockedPeriodResponse {
	responses := make([]dto.BlockedPeriodResponse, len(periods))
	for i := range periods {
		responses[i] = *BlockedPeriodToResponse(&periods[i])
	}
	return responses
}
