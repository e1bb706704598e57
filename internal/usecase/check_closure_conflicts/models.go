package check_closure_conflicts

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// Request модель запроса на проверку конфликтов закрытия
type Request struct {
	Date      time.Time         // Дата закрытия
	Name      string            // Название закрытия (например, "Банкет")
	Reason    *string           // Причина закрытия (опционально)
	AllDay    bool              // Закрытие на весь день
	StartTime *types.TimeString // Начало окна закрытия (для частичного)
	EndTime   *types.TimeString // Конец окна закрытия (для частичного)
}

// Response отчёт о конфликтующих бронях
// Проверка ничего не изменяет: повторный вызов даёт тот же отчёт
type Response struct {
	Conflicts []Conflict             // Подтверждённые брони, попадающие в окно закрытия
	Summary   domain.ConflictSummary // Сводка по конфликтам
}

// Conflict бронь, попадающая в окно закрытия
type Conflict struct {
	ReservationID      int64
	GuestName          string
	GuestEmail         string
	PartySize          int
	StartTime          types.TimeString
	HasSpecialRequests bool
}

// toClosure собирает доменное закрытие из запроса (без сохранения)
func (r *Request) toClosure() *domain.Closure {
	return &domain.Closure{
		Date:      r.Date,
		Name:      r.Name,
		Reason:    r.Reason,
		AllDay:    r.AllDay,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
