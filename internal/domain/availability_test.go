package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nst1k/RST-ReservationService/pkg/types"
)

func confirmedAt(id int64, d time.Time, tm types.TimeString, partySize int) *Reservation {
	return &Reservation{
		ID:        id,
		GuestName: "Guest",
		PartySize: partySize,
		Date:      d,
		StartTime: tm,
		Status:    StatusConfirmed,
	}
}

func TestEvaluateAvailability_SlotFull(t *testing.T) {
	// 2025-06-01 - воскресенье, зал открыт 12:00-22:00
	d := date(2025, time.June, 1)

	configs := []*TableConfiguration{
		{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: true},
	}
	reservations := []*Reservation{
		confirmedAt(1, d, "18:00", 4),
		confirmedAt(2, d, "18:00", 4),
	}

	result := EvaluateAvailability(d, "18:00", 4, reservations, configs, nil, 30)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonSlotFull, result.Reason)

	// Ненастроенный размер компании отбивается раньше проверки ёмкости
	result = EvaluateAvailability(d, "18:00", 2, reservations, configs, nil, 30)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonUnsupportedPartySize, result.Reason)
}

func TestEvaluateAvailability_NeverAvailableAtCapacity(t *testing.T) {
	d := date(2025, time.June, 1)
	configs := []*TableConfiguration{
		{PartySize: 2, TableCount: 3, MaxReservationsPerSlot: 3, IsActive: true},
	}

	reservations := []*Reservation{}
	for i := int64(1); i <= 3; i++ {
		result := EvaluateAvailability(d, "19:00", 2, reservations, configs, nil, 30)
		assert.True(t, result.Available, "slot must be available with %d of 3 taken", len(reservations))
		reservations = append(reservations, confirmedAt(i, d, "19:00", 2))
	}

	result := EvaluateAvailability(d, "19:00", 2, reservations, configs, nil, 30)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonSlotFull, result.Reason)
}

func TestEvaluateAvailability_CancelledDoesNotCount(t *testing.T) {
	d := date(2025, time.June, 1)
	configs := []*TableConfiguration{
		{PartySize: 4, TableCount: 1, MaxReservationsPerSlot: 1, IsActive: true},
	}

	cancelled := confirmedAt(1, d, "18:00", 4)
	cancelled.Status = StatusCancelled

	result := EvaluateAvailability(d, "18:00", 4, []*Reservation{cancelled}, configs, nil, 30)
	assert.True(t, result.Available, "cancelled reservation frees the slot")

	// Completed и no_show слот не освобождают
	completed := confirmedAt(2, d, "18:00", 4)
	completed.Status = StatusCompleted

	result = EvaluateAvailability(d, "18:00", 4, []*Reservation{completed}, configs, nil, 30)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonSlotFull, result.Reason)
}

func TestEvaluateAvailability_ReasonOrdering(t *testing.T) {
	d := date(2025, time.June, 1)
	configs := []*TableConfiguration{
		{PartySize: 4, TableCount: 1, MaxReservationsPerSlot: 1, IsActive: true},
	}
	closures := []*Closure{
		{ID: 1, Date: d, Name: "Private Event", AllDay: true},
	}
	reservations := []*Reservation{confirmedAt(1, d, "18:00", 4)}

	// Размер компании проверяется раньше времени суток и закрытий
	result := EvaluateAvailability(d, "03:00", 99, reservations, configs, closures, 30)
	assert.Equal(t, ReasonUnsupportedPartySize, result.Reason)

	// Время вне расписания проверяется раньше закрытия
	result = EvaluateAvailability(d, "03:00", 4, reservations, configs, closures, 30)
	assert.Equal(t, ReasonOutsideOperatingHours, result.Reason)

	// Закрытие проверяется раньше ёмкости
	result = EvaluateAvailability(d, "18:00", 4, reservations, configs, closures, 30)
	assert.Equal(t, ReasonClosed, result.Reason)
}

func TestValidateBookingRequest_BookingWindow(t *testing.T) {
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	settings := &GlobalSettings{MaxPartySize: 8, SlotDurationMinutes: 30, AdvanceBookingDays: 14}
	configs := []*TableConfiguration{
		{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: true},
	}

	// Дата в прошлом
	result := ValidateBookingRequest(date(2025, time.May, 19), "18:00", 4, now, settings, nil, configs, nil)
	assert.Equal(t, ReasonPastAdvanceWindow, result.Reason)

	// Дата за пределами окна бронирования
	result = ValidateBookingRequest(date(2025, time.June, 20), "18:00", 4, now, settings, nil, configs, nil)
	assert.Equal(t, ReasonPastAdvanceWindow, result.Reason)

	// Граница окна включается: ровно через 14 дней бронировать можно
	result = ValidateBookingRequest(date(2025, time.June, 3), "17:00", 4, now, settings, nil, configs, nil)
	assert.True(t, result.Available)

	// Размер компании отбивается раньше проверки окна
	result = ValidateBookingRequest(date(2025, time.May, 19), "18:00", 3, now, settings, nil, configs, nil)
	assert.Equal(t, ReasonUnsupportedPartySize, result.Reason)
}
