package domain

import (
	"time"

	"github.com/nst1k/RST-ReservationService/pkg/types"
)

// UnavailableReason причина отказа в бронировании слота
type UnavailableReason string

const (
	ReasonUnsupportedPartySize  UnavailableReason = "unsupported_party_size"
	ReasonPastAdvanceWindow     UnavailableReason = "past_advance_window"
	ReasonOutsideOperatingHours UnavailableReason = "outside_operating_hours"
	ReasonClosed                UnavailableReason = "closed"
	ReasonSlotFull              UnavailableReason = "slot_full"
)

// AvailabilityResult результат проверки доступности слота
type AvailabilityResult struct {
	Available bool
	Reason    UnavailableReason // заполнена только при Available = false
}

// Available результат "слот доступен"
func Available() AvailabilityResult {
	return AvailabilityResult{Available: true}
}

// Unavailable результат отказа с причиной
func Unavailable(reason UnavailableReason) AvailabilityResult {
	return AvailabilityResult{Available: false, Reason: reason}
}

// EvaluateAvailability проверяет, можно ли принять бронь на слот (date, t)
// Проверки идут в фиксированном порядке, срабатывает первая ошибка:
//  1. размер компании должен быть настроен и активен
//  2. t должен совпадать с одним из слотов расписания на дату
//  3. слот не должен попадать в закрытие
//  4. число неотменённых броней на слот должно быть меньше лимита
//     конфигурации запрошенного размера компании
//
// Порядок влияет на сообщения пользователю и меняться не должен
func EvaluateAvailability(
	date time.Time,
	t types.TimeString,
	partySize int,
	reservations []*Reservation,
	configs []*TableConfiguration,
	closures []*Closure,
	slotDurationMinutes int,
) AvailabilityResult {
	if !IsPartySizeBookable(configs, partySize) {
		return Unavailable(ReasonUnsupportedPartySize)
	}

	if !IsSlotTime(date, t, slotDurationMinutes) {
		return Unavailable(ReasonOutsideOperatingHours)
	}

	if IsBlocked(date, t, closures) {
		return Unavailable(ReasonClosed)
	}

	_, maxPerSlot, err := CapacityFor(configs, partySize)
	if err != nil {
		return Unavailable(ReasonUnsupportedPartySize)
	}

	if CountAtSlot(reservations, date, t) >= maxPerSlot {
		return Unavailable(ReasonSlotFull)
	}

	return Available()
}

// ValidateBookingRequest полная проверка заявки на бронь при создании
// Дополнительно к EvaluateAvailability проверяет окно бронирования:
// дата не в прошлом и не дальше advance_booking_days от сегодняшнего дня
// Проверка даты идёт после проверки размера компании, но до проверок
// времени суток
func ValidateBookingRequest(
	date time.Time,
	t types.TimeString,
	partySize int,
	now time.Time,
	settings *GlobalSettings,
	reservations []*Reservation,
	configs []*TableConfiguration,
	closures []*Closure,
) AvailabilityResult {
	if !IsPartySizeBookable(configs, partySize) {
		return Unavailable(ReasonUnsupportedPartySize)
	}

	if !isWithinBookingWindow(date, now, settings.AdvanceBookingDays) {
		return Unavailable(ReasonPastAdvanceWindow)
	}

	return EvaluateAvailability(date, t, partySize, reservations, configs, closures, settings.SlotDurationMinutes)
}

// isWithinBookingWindow проверяет, что дата попадает в окно бронирования
// [сегодня, сегодня + advanceBookingDays]
func isWithinBookingWindow(date, now time.Time, advanceBookingDays int) bool {
	if IsDateInPast(date, now) {
		return false
	}

	maxDate := DateOnly(now).AddDate(0, 0, advanceBookingDays)
	return !DateOnly(date).After(maxDate)
}
