package models

import (
	"time"

	"github.com/nst1k/RST-ReservationService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление общих настроек
type UpdateSettingsRequest struct {
	MaxPartySize        int `json:"maxPartySize"`
	SlotDurationMinutes int `json:"slotDurationMinutes"`
	AdvanceBookingDays  int `json:"advanceBookingDays"`
}

// ToDomain конвертирует запрос в domain-модель
func (r *UpdateSettingsRequest) ToDomain() *domain.GlobalSettings {
	return &domain.GlobalSettings{
		MaxPartySize:        r.MaxPartySize,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AdvanceBookingDays:  r.AdvanceBookingDays,
	}
}

// UpsertTableConfigRequest запрос на создание/обновление конфигурации столов
type UpsertTableConfigRequest struct {
	PartySize              int  `json:"partySize"`
	TableCount             int  `json:"tableCount"`
	MaxReservationsPerSlot int  `json:"maxReservationsPerSlot"`
	IsActive               bool `json:"isActive"`
}

// ToDomain конвертирует запрос в domain-модель
func (r *UpsertTableConfigRequest) ToDomain() *domain.TableConfiguration {
	return &domain.TableConfiguration{
		PartySize:              r.PartySize,
		TableCount:             r.TableCount,
		MaxReservationsPerSlot: r.MaxReservationsPerSlot,
		IsActive:               r.IsActive,
	}
}

// Response модели

// SettingsResponse общие настройки в ответе сервиса
type SettingsResponse struct {
	MaxPartySize        int    `json:"maxPartySize"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain-модель в ответ сервиса
func FromDomainSettings(s *domain.GlobalSettings) *SettingsResponse {
	resp := &SettingsResponse{
		MaxPartySize:        s.MaxPartySize,
		SlotDurationMinutes: s.SlotDurationMinutes,
		AdvanceBookingDays:  s.AdvanceBookingDays,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// TableConfigResponse конфигурация столов в ответе сервиса
type TableConfigResponse struct {
	ID                     int64  `json:"id"`
	PartySize              int    `json:"partySize"`
	TableCount             int    `json:"tableCount"`
	MaxReservationsPerSlot int    `json:"maxReservationsPerSlot"`
	IsActive               bool   `json:"isActive"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`
}

// TableConfigListResponse список конфигураций столов
type TableConfigListResponse struct {
	Configurations     []*TableConfigResponse `json:"configurations"`
	BookablePartySizes []int                  `json:"bookablePartySizes"`
}

// FromDomainTableConfig конвертирует domain-модель в ответ сервиса
func FromDomainTableConfig(c *domain.TableConfiguration) *TableConfigResponse {
	return &TableConfigResponse{
		ID:                     c.ID,
		PartySize:              c.PartySize,
		TableCount:             c.TableCount,
		MaxReservationsPerSlot: c.MaxReservationsPerSlot,
		IsActive:               c.IsActive,
		CreatedAt:              c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTableConfigList конвертирует список конфигураций
func FromDomainTableConfigList(configs []*domain.TableConfiguration) *TableConfigListResponse {
	items := make([]*TableConfigResponse, len(configs))
	for i, c := range configs {
		items[i] = FromDomainTableConfig(c)
	}
	return &TableConfigListResponse{
		Configurations:     items,
		BookablePartySizes: domain.BookablePartySizes(configs),
	}
}
