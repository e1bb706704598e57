package update_table_config

import (
	"errors"
	"net/http"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	configService "github.com/nst1k/RST-ReservationService/internal/service/config"
	"github.com/nst1k/RST-ReservationService/internal/service/config/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация столов"
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

// Handle PUT /api/v1/admin/table-configurations
// Создаёт или обновляет конфигурацию для размера группы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertTableConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/table-configurations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertTableConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrInvalidConfig):
			h.logger.Warn("PUT /admin/table-configurations - Invalid configuration: party_size=%d, error=%v",
				req.PartySize, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /admin/table-configurations - Failed to upsert configuration: party_size=%d, error=%v",
				req.PartySize, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/table-configurations - Configuration saved: party_size=%d, table_count=%d, max_per_slot=%d",
		result.PartySize, result.TableCount, result.MaxReservationsPerSlot)
	handlers.RespondJSON(w, http.StatusOK, result)
}
