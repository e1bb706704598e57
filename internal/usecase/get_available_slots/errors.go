package get_available_slots

import "errors"

var (
	// ErrUnsupportedPartySize возвращается, когда для размера группы нет активной конфигурации столов
	ErrUnsupportedPartySize = errors.New("get_available_slots: unsupported party size")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
