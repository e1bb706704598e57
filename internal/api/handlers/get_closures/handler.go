package get_closures

import (
	"net/http"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	"github.com/nst1k/RST-ReservationService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service ClosureService
	logger  Logger
}

func NewHandler(service ClosureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/closures?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/closures - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/closures - Failed to list closures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/closures - Returned %d closures", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
