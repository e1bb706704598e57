package domain

import (
	"time"

	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// OperatingHours часы работы ресторана на один день недели
type OperatingHours struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// weeklySchedule фиксированное недельное расписание зала
// Пн-Вт короткий день, Ср-Пт средний, Сб-Вс длинный
// Закрытия на отдельные даты оформляются через Closure, а не через расписание
var weeklySchedule = map[time.Weekday]OperatingHours{
	time.Monday:    {OpenTime: "17:00", CloseTime: "21:00"},
	time.Tuesday:   {OpenTime: "17:00", CloseTime: "21:00"},
	time.Wednesday: {OpenTime: "17:00", CloseTime: "22:00"},
	time.Thursday:  {OpenTime: "17:00", CloseTime: "22:00"},
	time.Friday:    {OpenTime: "17:00", CloseTime: "22:00"},
	time.Saturday:  {OpenTime: "12:00", CloseTime: "22:00"},
	time.Sunday:    {OpenTime: "12:00", CloseTime: "22:00"},
}

// OperatingHoursForDate возвращает часы работы на указанную дату
// Второе значение false, если на этот день недели расписание не задано
func OperatingHoursForDate(date time.Time) (OperatingHours, bool) {
	hours, ok := weeklySchedule[date.Weekday()]
	return hours, ok
}

// SlotsForDate возвращает упорядоченный список слотов на дату
// Слоты идут от открытия с шагом slotDurationMinutes строго до закрытия:
// интервал полуоткрытый, слот ровно во время закрытия не генерируется
// Делимость окна на шаг здесь не проверяется - перебор просто останавливается
// на последнем слоте перед закрытием
func SlotsForDate(date time.Time, slotDurationMinutes int) []types.TimeString {
	hours, ok := OperatingHoursForDate(date)
	if !ok {
		return []types.TimeString{}
	}

	openMin, err := hours.OpenTime.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	closeMin, err := hours.CloseTime.Minutes()
	if err != nil {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (closeMin-openMin)/slotDurationMinutes)
	current := hours.OpenTime

	for current.IsBefore(hours.CloseTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(slotDurationMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// IsSlotTime проверяет, что t совпадает с одним из слотов на дату
func IsSlotTime(date time.Time, t types.TimeString, slotDurationMinutes int) bool {
	for _, slot := range SlotsForDate(date, slotDurationMinutes) {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
