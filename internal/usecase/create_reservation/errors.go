package create_reservation

import "errors"

var (
	// ErrUnsupportedPartySize возвращается, когда для размера группы нет активной конфигурации столов
	ErrUnsupportedPartySize = errors.New("create_reservation: unsupported party size")

	// ErrPastAdvanceWindow возвращается, когда дата в прошлом или дальше окна бронирования
	ErrPastAdvanceWindow = errors.New("create_reservation: date is outside the booking window")

	// ErrOutsideOperatingHours возвращается, когда время не совпадает со слотом рабочего дня
	ErrOutsideOperatingHours = errors.New("create_reservation: time is outside operating hours")

	// ErrClosed возвращается, когда слот попадает в закрытие ресторана
	ErrClosed = errors.New("create_reservation: restaurant is closed at this time")

	// ErrSlotFull возвращается, когда лимит броней на слот исчерпан
	ErrSlotFull = errors.New("create_reservation: slot is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
