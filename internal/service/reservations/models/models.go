package models

import (
	"errors"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на смену статуса брони
// confirmed в качестве целевого статуса означает восстановление отменённой брони
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest запрос на выборку броней
type ListReservationsRequest struct {
	Date            *time.Time // конкретная дата
	StartDate       *time.Time // либо период для недельного вида
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		filter.StartDate = r.Date
		filter.EndDate = r.Date
	} else {
		filter.StartDate = r.StartDate
		filter.EndDate = r.EndDate
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.ReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse бронь в ответе сервиса
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	GuestName          string  `json:"guestName"`
	GuestEmail         string  `json:"guestEmail"`
	GuestPhone         *string `json:"guestPhone,omitempty"`
	PartySize          int     `json:"partySize"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	Notes              *string `json:"notes,omitempty"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain-модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 r.ID,
		GuestName:          r.GuestName,
		GuestEmail:         r.GuestEmail,
		GuestPhone:         r.GuestPhone,
		PartySize:          r.PartySize,
		Date:               r.Date.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		Notes:              r.Notes,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список броней
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = FromDomainReservation(r)
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}

// ToDomainStatus конвертирует строку в статус брони
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow:
		return domain.ReservationStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
