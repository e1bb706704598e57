package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	settingsRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/settings"
)

// UseCase use case для создания брони столика
type UseCase struct {
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	tableConfigRepo TableConfigRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	tableConfigRepo TableConfigRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		tableConfigRepo: tableConfigRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверка доступности и вставка идут в одной serializable транзакции,
// чтобы два конкурентных запроса не переполнили лимит слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: guest=%s, date=%s, time=%s, partySize=%d",
		req.GuestName, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем глобальные настройки, при отсутствии используем дефолтные
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateReservation: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultGlobalSettings()
		uc.logger.Info("CreateReservation: using default settings")
	}

	// 3. Проверяем верхний предел размера группы из настроек
	if req.PartySize > settings.MaxPartySize {
		uc.logger.Warn("CreateReservation: party size %d exceeds max %d", req.PartySize, settings.MaxPartySize)
		return nil, ErrUnsupportedPartySize
	}

	// 4. Получаем конфигурации столов
	configs, err := uc.tableConfigRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get table configurations: %v", err)
		return nil, fmt.Errorf("%w: failed to get table configurations: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	var created *domain.Reservation

	// 5. Проверка доступности и вставка в одной транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Закрытия на дату
		closures, err := uc.closureRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		// 5.2. Активные брони на дату (с блокировкой строк внутри транзакции)
		filter := domain.ReservationsFilter{
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		reservations, err := uc.reservationRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.3. Полная проверка заявки
		result := domain.ValidateBookingRequest(
			req.Date, req.StartTime, req.PartySize,
			now, settings, reservations, configs, closures,
		)
		if !result.Available {
			return reasonToError(result.Reason)
		}

		// 5.4. Создаём бронь в статусе confirmed
		reservation := &domain.Reservation{
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
			GuestPhone: req.GuestPhone,
			PartySize:  req.PartySize,
			Date:       domain.DateOnly(req.Date),
			StartTime:  req.StartTime,
			Notes:      req.Notes,
			Status:     domain.StatusConfirmed,
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrInternal) {
			uc.logger.Error("CreateReservation: %v", txErr)
		} else {
			uc.logger.Warn("CreateReservation: rejected: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("CreateReservation: created reservation id=%d for date=%s, time=%s",
		created.ID, created.Date.Format(domain.DateFormat), created.StartTime)

	return &Response{Reservation: created}, nil
}

// reasonToError переводит причину отказа доменной проверки в ошибку usecase
func reasonToError(reason domain.UnavailableReason) error {
	switch reason {
	case domain.ReasonUnsupportedPartySize:
		return ErrUnsupportedPartySize
	case domain.ReasonPastAdvanceWindow:
		return ErrPastAdvanceWindow
	case domain.ReasonOutsideOperatingHours:
		return ErrOutsideOperatingHours
	case domain.ReasonClosed:
		return ErrClosed
	case domain.ReasonSlotFull:
		return ErrSlotFull
	default:
		return fmt.Errorf("%w: unknown rejection reason %q", ErrInternal, reason)
	}
}
