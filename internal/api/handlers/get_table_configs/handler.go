package get_table_configs

import (
	"net/http"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/table-configurations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTableConfigs(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/table-configurations - Failed to get configurations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/table-configurations - Returned %d configurations", len(result.Configurations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
