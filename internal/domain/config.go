package domain

import "time"

// TableConfiguration конфигурация столов для одного размера компании гостей
// Ёмкость считается на размер компании, а не на конкретные физические столы
type TableConfiguration struct {
	ID                     int64
	PartySize              int // уникален среди конфигураций
	TableCount             int // 0 = без ограничения по физическим столам
	MaxReservationsPerSlot int
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// HasTableLimit возвращает true, если задано число физических столов
func (c *TableConfiguration) HasTableLimit() bool {
	return c.TableCount > 0
}

// Validate проверяет бизнес-правила конфигурации
// Правило не исправляется молча: некорректная конфигурация отклоняется
func (c *TableConfiguration) Validate() error {
	if c.PartySize < MinPartySize || c.PartySize > MaxPartySizeLimit {
		return ErrInvalidPartySize
	}
	if c.TableCount < 0 {
		return ErrInvalidTableCount
	}
	if c.MaxReservationsPerSlot <= 0 {
		return ErrInvalidMaxPerSlot
	}
	if c.HasTableLimit() && c.MaxReservationsPerSlot > c.TableCount {
		return ErrMaxPerSlotExceedsTables
	}
	return nil
}

// GlobalSettings общие настройки бронирования
// Сервис читает снапшот настроек на каждый запрос, не кешируя его
type GlobalSettings struct {
	MaxPartySize        int
	SlotDurationMinutes int
	AdvanceBookingDays  int
	UpdatedAt           time.Time
}

// DefaultGlobalSettings возвращает настройки по умолчанию
func DefaultGlobalSettings() *GlobalSettings {
	return &GlobalSettings{
		MaxPartySize:        DefaultMaxPartySize,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
	}
}

// Validate проверяет корректность настроек
func (s *GlobalSettings) Validate() error {
	if s.MaxPartySize < MinPartySize || s.MaxPartySize > MaxPartySizeLimit {
		return ErrInvalidPartySize
	}
	if !IsAllowedSlotDuration(s.SlotDurationMinutes) {
		return ErrInvalidSlotDuration
	}
	if s.AdvanceBookingDays < MinAdvanceBookingDays || s.AdvanceBookingDays > MaxAdvanceBookingDays {
		return ErrInvalidAdvanceDays
	}
	return nil
}
