package config

import (
	"context"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория общих настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
	Update(ctx context.Context, s *domain.GlobalSettings) (*domain.GlobalSettings, error)
}

// TableConfigRepository интерфейс репозитория конфигураций столов
type TableConfigRepository interface {
	GetAll(ctx context.Context) ([]*domain.TableConfiguration, error)
	GetByPartySize(ctx context.Context, partySize int) (*domain.TableConfiguration, error)
	Upsert(ctx context.Context, config *domain.TableConfiguration) (*domain.TableConfiguration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
