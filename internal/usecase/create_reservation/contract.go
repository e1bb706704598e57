package create_reservation

import (
	"context"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
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

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
