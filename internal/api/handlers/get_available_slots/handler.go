package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	"github.com/nst1k/RST-ReservationService/internal/domain"
	getAvailableSlots "github.com/nst1k/RST-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize     = "некорректный размер группы"
	msgUnsupportedPartySize = "бронирование для группы такого размера недоступно"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&party_size=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := strconv.Atoi(query.Get("party_size"))
	if err != nil || partySize <= 0 {
		h.logger.Warn("GET /availability - Invalid party size: %q", query.Get("party_size"))
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:      date,
		PartySize: partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnsupportedPartySize):
			h.logger.Warn("GET /availability - Unsupported party size: %d", partySize)
			handlers.RespondBadRequest(w, msgUnsupportedPartySize)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Returned %d slots: date=%s, party_size=%d",
		len(result.Slots), date.Format(domain.DateFormat), partySize)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
