package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/scheduling"
)

// SlotsToResponses converts resolved candidate slots to their response DTOs,
// preserving chronological order. Unavailable slots are kept so clients can
// render them disabled.
func SlotsToResponses(slots []scheduling.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			StartAt:     slot.Start,
			EndAt:       slot.End,
			IsAvailable: slot.Available,
		}
	}
	return responses
}
