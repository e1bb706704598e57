package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация столов не найдена
	ErrConfigNotFound = errors.New("table configuration not found")

	// ErrInvalidConfig возвращается при нарушении бизнес-правил конфигурации
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
