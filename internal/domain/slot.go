package domain

import "github.com/nst1k/RST-ReservationService/pkg/types"

// SlotAvailability слот расписания с признаком доступности для брони
// Производное значение: существует только как результат расчёта, не хранится
type SlotAvailability struct {
	StartTime types.TimeString
	Available bool
	Reason    UnavailableReason // причина недоступности, пустая для доступных слотов
}

// ConflictSummary сводка по броням, попадающим в окно предлагаемого закрытия
type ConflictSummary struct {
	Count              int
	TotalGuests        int
	EarliestTime       types.TimeString
	LatestTime         types.TimeString
	HasSpecialRequests bool
}

// SummarizeConflicts строит сводку по списку конфликтующих броней
func SummarizeConflicts(conflicts []*Reservation) ConflictSummary {
	summary := ConflictSummary{Count: len(conflicts)}

	for i, r := range conflicts {
		summary.TotalGuests += r.PartySize

		if i == 0 {
			summary.EarliestTime = r.StartTime
			summary.LatestTime = r.StartTime
		} else {
			if r.StartTime.IsBefore(summary.EarliestTime) {
				summary.EarliestTime = r.StartTime
			}
			if r.StartTime.IsAfter(summary.LatestTime) {
				summary.LatestTime = r.StartTime
			}
		}

		if r.HasSpecialRequests() {
			summary.HasSpecialRequests = true
		}
	}

	return summary
}

// FindConflicts возвращает подтверждённые брони, попадающие в окно закрытия
// Для закрытия на весь день конфликтуют все подтверждённые брони этой даты,
// для частичного - с временем внутри [StartTime, EndTime] включительно
// Чистая функция без побочных эффектов: повторный вызов на тех же данных
// возвращает тот же набор
func FindConflicts(closure *Closure, reservations []*Reservation) []*Reservation {
	conflicts := make([]*Reservation, 0)

	for _, r := range reservations {
		if !r.IsConfirmed() {
			continue
		}
		if !closure.IsOnDate(r.Date) {
			continue
		}
		if closure.Covers(r.StartTime) {
			conflicts = append(conflicts, r)
		}
	}

	return conflicts
}
