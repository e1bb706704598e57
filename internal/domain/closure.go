package domain

import (
	"time"

	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// Closure период, в который ресторан не принимает брони
// Либо весь день (AllDay), либо ограниченный интервал [StartTime, EndTime]
type Closure struct {
	ID     int64
	Date   time.Time
	Name   string
	Reason *string
	AllDay bool

	// Заполнены только для частичного закрытия; StartTime < EndTime
	StartTime *types.TimeString
	EndTime   *types.TimeString

	CreatedAt time.Time
}

// Validate проверяет корректность окна закрытия
// Для частичного закрытия обязательны обе границы и StartTime < EndTime
func (c *Closure) Validate() error {
	if c.Name == "" || len(c.Name) > MaxClosureNameLength {
		return ErrInvalidClosureWindow
	}
	if c.Reason != nil && len(*c.Reason) > MaxClosureReasonLength {
		return ErrInvalidClosureWindow
	}
	if c.AllDay {
		return nil
	}
	if c.StartTime == nil || c.EndTime == nil {
		return ErrInvalidClosureWindow
	}
	if err := c.StartTime.Validate(); err != nil {
		return ErrInvalidClosureWindow
	}
	if err := c.EndTime.Validate(); err != nil {
		return ErrInvalidClosureWindow
	}
	if !c.StartTime.IsBefore(*c.EndTime) {
		return ErrInvalidClosureWindow
	}
	return nil
}

// Covers возвращает true, если время t попадает в окно закрытия
// Границы включаются с обеих сторон: бронь ровно на EndTime тоже блокируется
func (c *Closure) Covers(t types.TimeString) bool {
	if c.AllDay {
		return true
	}
	if c.StartTime == nil || c.EndTime == nil {
		return false
	}
	return !t.IsBefore(*c.StartTime) && !t.IsAfter(*c.EndTime)
}

// IsOnDate возвращает true, если закрытие относится к указанной дате
func (c *Closure) IsOnDate(date time.Time) bool {
	return SameDate(c.Date, date)
}

// IsBlocked возвращает true, если слот (date, t) попадает хотя бы в одно закрытие
func IsBlocked(date time.Time, t types.TimeString, closures []*Closure) bool {
	for _, c := range closures {
		if c.IsOnDate(date) && c.Covers(t) {
			return true
		}
	}
	return false
}

// ClosuresForDate возвращает закрытия, действующие в указанную дату
// Пересекающиеся окна допустимы - каждое проверяется независимо
func ClosuresForDate(date time.Time, closures []*Closure) []*Closure {
	result := make([]*Closure, 0)
	for _, c := range closures {
		if c.IsOnDate(date) {
			result = append(result, c)
		}
	}
	return result
}
