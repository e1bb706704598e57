package closures

import (
	"context"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	GetAll(ctx context.Context) ([]*domain.Closure, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Closure, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
