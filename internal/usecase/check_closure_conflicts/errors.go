package check_closure_conflicts

import "errors"

var (
	// ErrInvalidClosureWindow возвращается при некорректном окне частичного закрытия
	ErrInvalidClosureWindow = errors.New("check_closure_conflicts: invalid closure window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_closure_conflicts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_closure_conflicts: internal error")
)
