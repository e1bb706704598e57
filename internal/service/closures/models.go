package closures

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// ClosureResponse закрытие в ответе сервиса
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

// ClosureListResponse список закрытий
type ClosureListResponse struct {
	Closures []*ClosureResponse `json:"closures"`
	Total    int                `json:"total"`
}

// FromDomainClosure конвертирует domain-модель в ответ сервиса
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
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

// FromDomainClosureList конвертирует список закрытий
func FromDomainClosureList(closures []*domain.Closure) *ClosureListResponse {
	items := make([]*ClosureResponse, len(closures))
	for i, c := range closures {
		items[i] = FromDomainClosure(c)
	}
	return &ClosureListResponse{
		Closures: items,
		Total:    len(items),
	}
}
