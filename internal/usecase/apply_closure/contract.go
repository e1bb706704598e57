package apply_closure

import (
	"context"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/internal/integrations/notifyservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error)
}

// NotifyServiceClient интерфейс клиента сервиса уведомлений
type NotifyServiceClient interface {
	SendCancellation(ctx context.Context, notification *notifyservice.CancellationNotification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
