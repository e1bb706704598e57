package check_closure_conflicts

import (
	"context"

	checkClosureConflicts "github.com/nst1k/RST-ReservationService/internal/usecase/check_closure_conflicts"
)

type CheckClosureConflictsUseCase interface {
	Execute(ctx context.Context, req *checkClosureConflicts.Request) (*checkClosureConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
