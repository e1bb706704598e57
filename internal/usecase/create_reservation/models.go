package create_reservation

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	GuestName  string           // Имя гостя
	GuestEmail string           // Email гостя
	GuestPhone *string          // Телефон гостя (опционально)
	PartySize  int              // Размер группы гостей
	Date       time.Time        // Дата визита (без времени)
	StartTime  types.TimeString // Время начала слота
	Notes      *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	Reservation *domain.Reservation
}
