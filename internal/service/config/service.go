package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	settingsRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/settings"
	tableconfigRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/tableconfig"
	"github.com/nst1k/RST-ReservationService/internal/service/config/models"
)

// Service сервис для работы с настройками бронирования и конфигурацией столов
type Service struct {
	settingsRepo    SettingsRepository
	tableConfigRepo TableConfigRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	settingsRepo SettingsRepository,
	tableConfigRepo TableConfigRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:    settingsRepo,
		tableConfigRepo: tableConfigRepo,
		logger:          logger,
	}
}

// GetSettings возвращает текущие общие настройки
// Если настройки ещё не сохранялись, возвращаются значения по умолчанию
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("GetSettings: no stored settings, using defaults")
			return models.FromDomainSettings(domain.DefaultGlobalSettings()), nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// UpdateSettings сохраняет общие настройки после проверки бизнес-правил
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: maxPartySize=%d, slotDuration=%d, advanceDays=%d",
		req.MaxPartySize, req.SlotDurationMinutes, req.AdvanceBookingDays)

	settings := req.ToDomain()
	if err := settings.Validate(); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	updated, err := s.settingsRepo.Update(ctx, settings)
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: settings updated")
	return models.FromDomainSettings(updated), nil
}

// GetTableConfigs возвращает все конфигурации столов
func (s *Service) GetTableConfigs(ctx context.Context) (*models.TableConfigListResponse, error) {
	configs, err := s.tableConfigRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetTableConfigs: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTableConfigs - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableConfigList(configs), nil
}

// UpsertTableConfig создает или обновляет конфигурацию для размера компании
// Правило max_reservations_per_slot <= table_count проверяется здесь и
// нарушение отклоняется, а не исправляется молча
func (s *Service) UpsertTableConfig(ctx context.Context, req *models.UpsertTableConfigRequest) (*models.TableConfigResponse, error) {
	s.logger.Info("UpsertTableConfig: partySize=%d, tables=%d, maxPerSlot=%d, active=%t",
		req.PartySize, req.TableCount, req.MaxReservationsPerSlot, req.IsActive)

	config := req.ToDomain()
	if err := config.Validate(); err != nil {
		s.logger.Warn("UpsertTableConfig: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	updated, err := s.tableConfigRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("UpsertTableConfig: repository error for partySize=%d: %v", req.PartySize, err)
		return nil, fmt.Errorf("%w: UpsertTableConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertTableConfig: configuration id=%d saved for partySize=%d", updated.ID, updated.PartySize)
	return models.FromDomainTableConfig(updated), nil
}

// GetTableConfigByPartySize возвращает конфигурацию для одного размера компании
func (s *Service) GetTableConfigByPartySize(ctx context.Context, partySize int) (*models.TableConfigResponse, error) {
	config, err := s.tableConfigRepo.GetByPartySize(ctx, partySize)
	if err != nil {
		if errors.Is(err, tableconfigRepo.ErrConfigNotFound) {
			s.logger.Warn("GetTableConfigByPartySize: config for partySize=%d not found", partySize)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetTableConfigByPartySize: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTableConfigByPartySize - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableConfig(config), nil
}
