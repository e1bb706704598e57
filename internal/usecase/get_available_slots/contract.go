package get_available_slots

import (
	"context"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Closure, error)
}

// TableConfigRepository интерфейс репозитория конфигураций столов
type TableConfigRepository interface {
	GetAll(ctx context.Context) ([]*domain.TableConfiguration, error)
}

// SettingsRepository интерфейс репозитория общих настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
