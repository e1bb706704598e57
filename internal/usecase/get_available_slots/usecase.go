package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	settingsRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/settings"
)

// UseCase use case для получения слотов рабочего дня с признаком доступности
type UseCase struct {
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	tableConfigRepo TableConfigRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	tableConfigRepo TableConfigRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		tableConfigRepo: tableConfigRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, partySize=%d",
		req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем глобальные настройки, при отсутствии используем дефолтные
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultGlobalSettings()
		uc.logger.Info("GetAvailableSlots: using default settings")
	}

	// 3. Получаем конфигурации столов и проверяем, что размер группы обслуживается
	configs, err := uc.tableConfigRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get table configurations: %v", err)
		return nil, fmt.Errorf("%w: failed to get table configurations: %v", ErrInternal, err)
	}

	if !domain.IsPartySizeBookable(configs, req.PartySize) {
		uc.logger.Warn("GetAvailableSlots: party size %d is not bookable", req.PartySize)
		return nil, ErrUnsupportedPartySize
	}

	// 4. Для прошедших дат возвращаем пустой список слотов
	now := uc.timeProvider.Now()
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, PartySize: req.PartySize, Slots: []Slot{}}, nil
	}

	// 5. Генерируем слоты рабочего дня
	times := domain.SlotsForDate(req.Date, settings.SlotDurationMinutes)

	// 6. Получаем закрытия на дату
	closures, err := uc.closureRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	// 7. Получаем активные брони на дату
	filter := domain.ReservationsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность каждого слота
	slots := make([]Slot, 0, len(times))
	for _, slotTime := range times {
		result := domain.EvaluateAvailability(
			req.Date, slotTime, req.PartySize,
			reservations, configs, closures, settings.SlotDurationMinutes,
		)
		slots = append(slots, Slot{
			StartTime: slotTime,
			Available: result.Available,
			Reason:    result.Reason,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, partySize=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.PartySize)

	return &Response{
		Date:      req.Date,
		PartySize: req.PartySize,
		Slots:     slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	return nil
}
