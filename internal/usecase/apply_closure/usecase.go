package apply_closure

import (
	"context"
	"fmt"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/internal/integrations/notifyservice"
)

// UseCase use case для применения закрытия с каскадной отменой броней
// Вторая фаза двухфазного протокола: без Force закрытие с конфликтами
// не сохраняется, клиент получает отчёт и должен подтвердить отмену
type UseCase struct {
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	notifyClient    NotifyServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	notifyClient NotifyServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		notifyClient:    notifyClient,
		logger:          logger,
	}
}

// Execute выполняет use case применения закрытия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyClosure: date=%s, allDay=%v, force=%v",
		req.Date.Format(domain.DateFormat), req.AllDay, req.Force)

	// 1. Валидация входных данных и окна закрытия
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	closure := req.toClosure()
	if err := closure.Validate(); err != nil {
		uc.logger.Warn("ApplyClosure: invalid closure window: %v", err)
		return nil, ErrInvalidClosureWindow
	}

	// 2. Ищем конфликты по свежему состоянию броней
	// Отчёт предыдущей фазы мог устареть, поэтому ему не доверяем
	conflicts, err := uc.findConflicts(ctx, req, closure)
	if err != nil {
		return nil, err
	}

	// 3. Есть конфликты и нет подтверждения: закрытие не сохраняем
	if len(conflicts) > 0 && !req.Force {
		uc.logger.Info("ApplyClosure: %d conflicts found, confirmation required", len(conflicts))
		return &Response{
			NeedsConfirmation: true,
			Conflicts:         toConflictItems(conflicts),
			Summary:           domain.SummarizeConflicts(conflicts),
		}, nil
	}

	// 4. Каскадная отмена конфликтующих броней
	// Сбой отмены одной брони не прерывает каскад и не отменяет закрытие
	cancellationReason := fmt.Sprintf("Restaurant closed: %s", req.Name)

	cancelled := make([]int64, 0, len(conflicts))
	failed := make([]CancellationFailure, 0)

	for _, r := range conflicts {
		if err := uc.reservationRepo.Cancel(ctx, r.ID, cancellationReason); err != nil {
			uc.logger.Error("ApplyClosure: failed to cancel reservation id=%d: %v", r.ID, err)
			failed = append(failed, CancellationFailure{ReservationID: r.ID, Err: err})
			continue
		}

		cancelled = append(cancelled, r.ID)
		uc.notifyCancellation(ctx, r, cancellationReason)
	}

	// 5. Сохраняем закрытие
	created, err := uc.closureRepo.Create(ctx, closure)
	if err != nil {
		uc.logger.Error("ApplyClosure: failed to create closure: %v", err)
		return nil, fmt.Errorf("%w: failed to create closure: %v", ErrInternal, err)
	}

	uc.logger.Info("ApplyClosure: closure id=%d applied, cancelled=%d, failed=%d",
		created.ID, len(cancelled), len(failed))

	return &Response{
		Applied:   true,
		Closure:   created,
		Cancelled: cancelled,
		Failed:    failed,
	}, nil
}

// findConflicts возвращает подтверждённые брони, попадающие в окно закрытия
func (uc *UseCase) findConflicts(ctx context.Context, req *Request, closure *domain.Closure) ([]*domain.Reservation, error) {
	filter := domain.ReservationsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ApplyClosure: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	return domain.FindConflicts(closure, reservations), nil
}

// notifyCancellation отправляет гостю уведомление об отмене брони
// Сбой уведомления не считается ошибкой каскада
func (uc *UseCase) notifyCancellation(ctx context.Context, r *domain.Reservation, reason string) {
	notification := &notifyservice.CancellationNotification{
		ReservationID: r.ID,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		GuestPhone:    r.GuestPhone,
		Date:          r.Date.Format(domain.DateFormat),
		StartTime:     r.StartTime.String(),
		PartySize:     r.PartySize,
		Reason:        reason,
	}

	if err := uc.notifyClient.SendCancellation(ctx, notification); err != nil {
		uc.logger.Warn("ApplyClosure: failed to notify guest for reservation id=%d: %v", r.ID, err)
	}
}

// toConflictItems собирает элементы отчёта о конфликтах
func toConflictItems(conflicts []*domain.Reservation) []Conflict {
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
	return items
}
