package domain

import "errors"

var (
	// ErrPartySizeNotConfigured возвращается, когда для размера компании нет активной конфигурации
	ErrPartySizeNotConfigured = errors.New("domain: party size is not configured")

	// ErrInvalidPartySize возвращается при размере компании вне допустимого диапазона
	ErrInvalidPartySize = errors.New("domain: invalid party size")

	// ErrInvalidTableCount возвращается при отрицательном числе столов
	ErrInvalidTableCount = errors.New("domain: table count must not be negative")

	// ErrInvalidMaxPerSlot возвращается при неположительном лимите броней на слот
	ErrInvalidMaxPerSlot = errors.New("domain: max reservations per slot must be positive")

	// ErrMaxPerSlotExceedsTables возвращается, когда лимит броней превышает число столов
	ErrMaxPerSlotExceedsTables = errors.New("domain: max reservations per slot exceeds table count")

	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("domain: slot duration must be one of 15, 30, 60 minutes")

	// ErrInvalidAdvanceDays возвращается при недопустимой глубине бронирования
	ErrInvalidAdvanceDays = errors.New("domain: advance booking days out of range")

	// ErrInvalidClosureWindow возвращается при некорректном окне частичного закрытия
	ErrInvalidClosureWindow = errors.New("domain: closure start time must be before end time")
)
