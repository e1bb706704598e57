package check_closure_conflicts

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nst1k/RST-ReservationService/internal/api/handlers"
	checkClosureConflicts "github.com/nst1k/RST-ReservationService/internal/usecase/check_closure_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные данные закрытия"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidWindow      = "некорректное окно закрытия"
)

type Handler struct {
	useCase  CheckClosureConflictsUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase CheckClosureConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/closures/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closures/conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /admin/closures/conflicts - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/closures/conflicts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkClosureConflicts.ErrInvalidClosureWindow):
			h.logger.Warn("POST /admin/closures/conflicts - Invalid closure window: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, checkClosureConflicts.ErrInvalidInput):
			h.logger.Warn("POST /admin/closures/conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /admin/closures/conflicts - Failed to check conflicts: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/closures/conflicts - Found %d conflicts: date=%s",
		result.Summary.Count, req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
