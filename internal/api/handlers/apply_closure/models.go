package apply_closure

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	applyClosure "github.com/nst1k/RST-ReservationService/internal/usecase/apply_closure"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// ApplyClosureRequest HTTP request model
type ApplyClosureRequest struct {
	Date      string  `json:"date" validate:"required"` // "2025-06-01"
	Name      string  `json:"name" validate:"required,max=200"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	AllDay    bool    `json:"allDay"`
	StartTime *string `json:"startTime,omitempty"` // "17:00"
	EndTime   *string `json:"endTime,omitempty"`   // "19:00"
	Force     bool    `json:"force"`               // подтверждение каскадной отмены
}

// ApplyClosureResponse HTTP response model
type ApplyClosureResponse struct {
	Applied           bool               `json:"applied"`
	NeedsConfirmation bool               `json:"needsConfirmation"`
	Closure           *ClosureResponse   `json:"closure,omitempty"`
	Conflicts         []ConflictResponse `json:"conflicts,omitempty"`
	Summary           *SummaryResponse   `json:"summary,omitempty"`
	Cancelled         []int64            `json:"cancelledReservationIds,omitempty"`
	Failed            []FailureResponse  `json:"failedCancellations,omitempty"`
}

// ClosureResponse сохранённое закрытие
type ClosureResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Name      string  `json:"name"`
	Reason    *string `json:"reason,omitempty"`
	AllDay    bool    `json:"allDay"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ConflictResponse конфликтующая бронь
type ConflictResponse struct {
	ReservationID      int64  `json:"reservationId"`
	GuestName          string `json:"guestName"`
	GuestEmail         string `json:"guestEmail"`
	PartySize          int    `json:"partySize"`
	StartTime          string `json:"startTime"`
	HasSpecialRequests bool   `json:"hasSpecialRequests"`
}

// SummaryResponse сводка по конфликтам
type SummaryResponse struct {
	Count              int    `json:"count"`
	TotalGuests        int    `json:"totalGuests"`
	EarliestTime       string `json:"earliestTime,omitempty"`
	LatestTime         string `json:"latestTime,omitempty"`
	HasSpecialRequests bool   `json:"hasSpecialRequests"`
}

// FailureResponse бронь, которую не удалось отменить
type FailureResponse struct {
	ReservationID int64  `json:"reservationId"`
	Error         string `json:"error"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyClosureRequest) ToUseCaseRequest() (*applyClosure.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var startTime, endTime *types.TimeString

	if r.StartTime != nil {
		parsed, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = &parsed
	}

	if r.EndTime != nil {
		parsed, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &parsed
	}

	return &applyClosure.Request{
		Date:      date,
		Name:      r.Name,
		Reason:    r.Reason,
		AllDay:    r.AllDay,
		StartTime: startTime,
		EndTime:   endTime,
		Force:     r.Force,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyClosure.Response) *ApplyClosureResponse {
	out := &ApplyClosureResponse{
		Applied:           resp.Applied,
		NeedsConfirmation: resp.NeedsConfirmation,
		Cancelled:         resp.Cancelled,
	}

	if resp.Closure != nil {
		out.Closure = fromDomainClosure(resp.Closure)
	}

	if resp.NeedsConfirmation {
		conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
		for _, c := range resp.Conflicts {
			conflicts = append(conflicts, ConflictResponse{
				ReservationID:      c.ReservationID,
				GuestName:          c.GuestName,
				GuestEmail:         c.GuestEmail,
				PartySize:          c.PartySize,
				StartTime:          c.StartTime.String(),
				HasSpecialRequests: c.HasSpecialRequests,
			})
		}
		out.Conflicts = conflicts
		out.Summary = &SummaryResponse{
			Count:              resp.Summary.Count,
			TotalGuests:        resp.Summary.TotalGuests,
			EarliestTime:       resp.Summary.EarliestTime.String(),
			LatestTime:         resp.Summary.LatestTime.String(),
			HasSpecialRequests: resp.Summary.HasSpecialRequests,
		}
	}

	for _, f := range resp.Failed {
		out.Failed = append(out.Failed, FailureResponse{
			ReservationID: f.ReservationID,
			Error:         f.Err.Error(),
		})
	}

	return out
}

func fromDomainClosure(c *domain.Closure) *ClosureResponse {
	resp := &ClosureResponse{
		ID:        c.ID,
		Date:      c.Date.Format(domain.DateFormat),
		Name:      c.Name,
		Reason:    c.Reason,
		AllDay:    c.AllDay,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}

	if c.StartTime != nil {
		startTime := c.StartTime.String()
		resp.StartTime = &startTime
	}
	if c.EndTime != nil {
		endTime := c.EndTime.String()
		resp.EndTime = &endTime
	}

	return resp
}
