package create_reservation

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	createReservation "github.com/nst1k/RST-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные данные брони"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnsupportedPartySize = "бронирование для группы такого размера недоступно"
	msgPastAdvanceWindow    = "дата вне окна бронирования"
	msgOutsideHours         = "время вне рабочих часов ресторана"
	msgClosed               = "ресторан закрыт в выбранное время"
	msgSlotFull             = "выбранный слот полностью занят"
)

type Handler struct {
	useCase  CreateReservationUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Валидация полей запроса
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrUnsupportedPartySize):
			h.logger.Warn("POST /reservations - Unsupported party size: %d", req.PartySize)
			handlers.RespondBadRequest(w, msgUnsupportedPartySize)

		case errors.Is(err, createReservation.ErrPastAdvanceWindow):
			h.logger.Warn("POST /reservations - Outside booking window: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastAdvanceWindow)

		case errors.Is(err, createReservation.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - Outside operating hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrClosed):
			h.logger.Warn("POST /reservations - Restaurant closed: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgClosed)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, date=%s, time=%s, party_size=%d",
		result.Reservation.ID, req.Date, req.StartTime, req.PartySize)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
