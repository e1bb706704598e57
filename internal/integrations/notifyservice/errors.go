package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")

	// ErrSendFailed возвращается, когда сервис уведомлений отклонил отправку
	// Отправка уведомления никогда не критична для вызывающей операции:
	// ошибка логируется, но не откатывает уже выполненную отмену брони
	ErrSendFailed = errors.New("notifyservice client: failed to send notification")
)
