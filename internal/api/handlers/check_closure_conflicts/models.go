package check_closure_conflicts

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	checkClosureConflicts "github.com/nst1k/RST-ReservationService/internal/usecase/check_closure_conflicts"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	Date      string  `json:"date" validate:"required"` // "2025-06-01"
	Name      string  `json:"name" validate:"required,max=200"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	AllDay    bool    `json:"allDay"`
	StartTime *string `json:"startTime,omitempty"` // "17:00"
	EndTime   *string `json:"endTime,omitempty"`   // "19:00"
}

// ConflictsResponse HTTP response model
type ConflictsResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
	Summary   SummaryResponse    `json:"summary"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest() (*checkClosureConflicts.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, endTime, err := parseWindow(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkClosureConflicts.Request{
		Date:      date,
		Name:      r.Name,
		Reason:    r.Reason,
		AllDay:    r.AllDay,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkClosureConflicts.Response) *ConflictsResponse {
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

	return &ConflictsResponse{
		Conflicts: conflicts,
		Summary: SummaryResponse{
			Count:              resp.Summary.Count,
			TotalGuests:        resp.Summary.TotalGuests,
			EarliestTime:       resp.Summary.EarliestTime.String(),
			LatestTime:         resp.Summary.LatestTime.String(),
			HasSpecialRequests: resp.Summary.HasSpecialRequests,
		},
	}
}

// parseWindow парсит границы окна закрытия
func parseWindow(startStr, endStr *string) (*types.TimeString, *types.TimeString, error) {
	var startTime, endTime *types.TimeString

	if startStr != nil {
		parsed, err := types.NewTimeStringFromString(*startStr)
		if err != nil {
			return nil, nil, err
		}
		startTime = &parsed
	}

	if endStr != nil {
		parsed, err := types.NewTimeStringFromString(*endStr)
		if err != nil {
			return nil, nil, err
		}
		endTime = &parsed
	}

	return startTime, endTime, nil
}
