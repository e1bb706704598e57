package get_available_slots

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
	PartySize int       // Размер группы гостей
}

// Response модель ответа со списком слотов и их доступностью
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	PartySize int       // Размер группы из запроса
	Slots     []Slot    // Слоты рабочего дня с признаком доступности
}

// Slot модель временного слота с признаком доступности
type Slot struct {
	StartTime types.TimeString         // Время начала слота (например, "17:00")
	Available bool                     // Доступен ли слот для бронирования
	Reason    domain.UnavailableReason // Причина недоступности, пустая для доступных слотов
}
