package converter

import (
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
)

// AvailabilitiesToSlotResponses converts availability rows to the public slot
// listing shape. Rows are expected pre-filtered to available ones.
func AvailabilitiesToSlotResponses(availabilities []entity.Availability) []dto.SlotResponse {
	slots := make([]dto.SlotResponse, len(availabilities))
	for i, a := range availabilities {
		slots[i] = dto.SlotResponse{
			Start: a.StartTime,
			End:   a.EndTime,
		}
	}
	return slots
}
