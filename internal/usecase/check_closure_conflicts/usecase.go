package check_closure_conflicts

import (
	"context"
	"fmt"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// UseCase use case для предварительной проверки конфликтов закрытия
// Первая фаза каскадной отмены: только отчёт, никаких изменений
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку конфликтов закрытия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckClosureConflicts: date=%s, allDay=%v",
		req.Date.Format(domain.DateFormat), req.AllDay)

	// 1. Валидация входных данных и окна закрытия
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	closure := req.toClosure()
	if err := closure.Validate(); err != nil {
		uc.logger.Warn("CheckClosureConflicts: invalid closure window: %v", err)
		return nil, ErrInvalidClosureWindow
	}

	// 2. Получаем активные брони на дату закрытия
	filter := domain.ReservationsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckClosureConflicts: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Ищем подтверждённые брони в окне закрытия
	conflicts := domain.FindConflicts(closure, reservations)

	items := make([]Conflict, 0, len(conflicts))
	for _, r := range conflicts {
		items = append(items, Conflict{
			ReservationID:      r.ID,
			GuestName:          r.GuestName,
			GuestEmail:         r.GuestEmail,
			PartySize:          r.PartySize,
			StartTime:          r.StartTime,
			HasSpecialRequests: r.HasSpecialRequests(),
		})
	}

	summary := domain.SummarizeConflicts(conflicts)

	uc.logger.Info("CheckClosureConflicts: found %d conflicts (%d guests) for date=%s",
		summary.Count, summary.TotalGuests, req.Date.Format(domain.DateFormat))

	return &Response{Conflicts: items, Summary: summary}, nil
}
