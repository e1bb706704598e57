package apply_closure

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// Request модель запроса на применение закрытия
type Request struct {
	Date      time.Time         // Дата закрытия
	Name      string            // Название закрытия
	Reason    *string           // Причина закрытия (опционально)
	AllDay    bool              // Закрытие на весь день
	StartTime *types.TimeString // Начало окна закрытия (для частичного)
	EndTime   *types.TimeString // Конец окна закрытия (для частичного)
	Force     bool              // Подтверждение каскадной отмены конфликтующих броней
}

// Response результат применения закрытия
// При NeedsConfirmation = true закрытие НЕ сохранено: клиент должен
// повторить запрос с Force = true, подтвердив каскадную отмену
type Response struct {
	Applied           bool                   // Закрытие сохранено
	NeedsConfirmation bool                   // Требуется подтверждение каскадной отмены
	Closure           *domain.Closure        // Сохранённое закрытие (только при Applied)
	Conflicts         []Conflict             // Конфликтующие брони (при NeedsConfirmation)
	Summary           domain.ConflictSummary // Сводка по конфликтам (при NeedsConfirmation)
	Cancelled         []int64                // ID отменённых броней (при Applied)
	Failed            []CancellationFailure  // Брони, отменить которые не удалось
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

// CancellationFailure бронь, которую не удалось отменить при каскаде
type CancellationFailure struct {
	ReservationID int64
	Err           error
}

// toClosure собирает доменное закрытие из запроса
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
