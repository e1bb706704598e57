package create_reservation

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	createReservation "github.com/nst1k/RST-ReservationService/internal/usecase/create_reservation"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	GuestName  string  `json:"guestName" validate:"required,max=200"`
	GuestEmail string  `json:"guestEmail" validate:"required,email"`
	GuestPhone *string `json:"guestPhone,omitempty" validate:"omitempty,e164"`
	PartySize  int     `json:"partySize" validate:"required,min=1"`
	Date       string  `json:"date" validate:"required"`      // "2025-06-01"
	StartTime  string  `json:"startTime" validate:"required"` // "18:00"
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	PartySize  int     `json:"partySize"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Notes      *string `json:"notes,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		PartySize:  r.PartySize,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	res := resp.Reservation
	return &ReservationResponse{
		ID:         res.ID,
		GuestName:  res.GuestName,
		GuestEmail: res.GuestEmail,
		GuestPhone: res.GuestPhone,
		PartySize:  res.PartySize,
		Date:       res.Date.Format(domain.DateFormat),
		StartTime:  res.StartTime.String(),
		Notes:      res.Notes,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  res.UpdatedAt.Format(time.RFC3339),
	}
}
