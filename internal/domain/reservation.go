package domain

import (
	"time"

	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// ReservationStatus статус брони столика
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation бронь столика в ресторане
type Reservation struct {
	ID         int64
	GuestName  string
	GuestEmail string
	GuestPhone *string
	PartySize  int
	Date       time.Time        // дата визита (без времени)
	StartTime  types.TimeString // время начала слота
	Notes      *string          // пожелания гостя
	Status     ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot возвращает true, если бронь занимает место в своём слоте
// Место освобождает только отмена; completed и no_show остаются в истории слота
func (r *Reservation) OccupiesSlot() bool {
	return r.Status != StatusCancelled
}

// IsConfirmed возвращает true для подтверждённой брони
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронь можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// CanBeRestored возвращает true, если бронь можно вернуть в confirmed
// Единственный обратный переход статусной модели: cancelled -> confirmed
func (r *Reservation) CanBeRestored() bool {
	return r.Status == StatusCancelled
}

// HasSpecialRequests возвращает true, если гость оставил пожелания
func (r *Reservation) HasSpecialRequests() bool {
	return r.Notes != nil && *r.Notes != ""
}

// CanTransitionTo проверяет допустимость перехода статуса
// confirmed -> completed | no_show | cancelled; cancelled -> confirmed (restore)
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	switch r.Status {
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusNoShow || target == StatusCancelled
	case StatusCancelled:
		return target == StatusConfirmed
	default:
		return false
	}
}

// ReservationsFilter фильтр для выборки броней
type ReservationsFilter struct {
	StartDate       *time.Time         // Начало периода (nil - без ограничения)
	EndDate         *time.Time         // Конец периода (nil - без ограничения)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые брони
}

// CountAtSlot возвращает число броней, занимающих слот (date, t)
// Party size не учитывается: лимит действует на слот целиком
func CountAtSlot(reservations []*Reservation, date time.Time, t types.TimeString) int {
	count := 0
	for _, r := range reservations {
		if !r.OccupiesSlot() {
			continue
		}
		if !SameDate(r.Date, date) {
			continue
		}
		if r.StartTime.Equal(t) {
			count++
		}
	}
	return count
}

// SameDate проверяет, что две даты относятся к одному календарному дню
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
