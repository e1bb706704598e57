package apply_closure

import "errors"

var (
	// ErrInvalidClosureWindow возвращается при некорректном окне закрытия
	ErrInvalidClosureWindow = errors.New("apply_closure: invalid closure window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_closure: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_closure: internal error")
)
