package get_available_slots

import (
	"github.com/sanbud-pl/booking-service/internal/domain"
	getSlots "github.com/sanbud-pl/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one slot on the wire.
type SlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
}

// SlotsResponse is the response body of the slots endpoint.
type SlotsResponse struct {
	Date  string         `json:"date"` // "2025-10-15"
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response to the wire format.
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			Time:      slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return out
}
