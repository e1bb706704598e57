package apply_closure

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	applyClosure "github.com/nst1k/RST-ReservationService/internal/usecase/apply_closure"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные данные закрытия"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidWindow      = "некорректное окно закрытия"
)

type Handler struct {
	useCase  ApplyClosureUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase ApplyClosureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/closures
// Без force закрытие с конфликтами не применяется: в ответ уходит отчёт
// о конфликтах со статусом 409, клиент подтверждает повторным запросом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /admin/closures - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/closures - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, applyClosure.ErrInvalidClosureWindow):
			h.logger.Warn("POST /admin/closures - Invalid closure window: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, applyClosure.ErrInvalidInput):
			h.logger.Warn("POST /admin/closures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /admin/closures - Failed to apply closure: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.NeedsConfirmation {
		h.logger.Info("POST /admin/closures - Confirmation required: date=%s, conflicts=%d",
			req.Date, result.Summary.Count)
		handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /admin/closures - Closure applied: closure_id=%d, date=%s, cancelled=%d, failed=%d",
		result.Closure.ID, req.Date, len(result.Cancelled), len(result.Failed))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
