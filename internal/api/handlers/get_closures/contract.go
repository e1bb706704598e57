package get_closures

import (
	"context"
	"time"

	"github.com/nst1k/RST-ReservationService/internal/service/closures"
)

type ClosureService interface {
	List(ctx context.Context, date *time.Time) (*closures.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
