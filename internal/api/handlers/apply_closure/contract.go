package apply_closure

import (
	"context"

	applyClosure "github.com/nst1k/RST-ReservationService/internal/usecase/apply_closure"
)

type ApplyClosureUseCase interface {
	Execute(ctx context.Context, req *applyClosure.Request) (*applyClosure.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
