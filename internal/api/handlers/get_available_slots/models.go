package get_available_slots

import (
	"github.com/nst1k/RST-ReservationService/internal/domain"
	getAvailableSlots "github.com/nst1k/RST-ReservationService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string         `json:"date"`
	PartySize int            `json:"partySize"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse временной слот с признаком доступности
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
			Reason:    string(s.Reason),
		})
	}

	return &AvailabilityResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		PartySize: resp.PartySize,
		Slots:     slots,
	}
}
