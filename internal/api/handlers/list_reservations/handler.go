package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/internal/service/reservations"
	"github.com/nst1k/RST-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "start_date и end_date должны быть указаны вместе"
	msgInvalidStatus = "некорректный статус брони"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Параметры: date либо start_date+end_date, status, include_inactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListReservationsRequest{
		IncludeInactive: query.Get("include_inactive") == "true",
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	} else {
		startStr, endStr := query.Get("start_date"), query.Get("end_date")
		if (startStr == "") != (endStr == "") {
			h.logger.Warn("GET /admin/reservations - Incomplete period: start=%q, end=%q", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}

		if startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.StartDate = &start
			req.EndDate = &end
		}
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid status: %q", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Returned %d reservations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
