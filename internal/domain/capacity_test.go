package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookablePartySizes(t *testing.T) {
	configs := []*TableConfiguration{
		{PartySize: 6, TableCount: 1, MaxReservationsPerSlot: 1, IsActive: true},
		{PartySize: 2, TableCount: 4, MaxReservationsPerSlot: 4, IsActive: true},
		{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: false},
		{PartySize: 8, TableCount: 0, MaxReservationsPerSlot: 1, IsActive: true},
	}

	sizes := BookablePartySizes(configs)
	assert.Equal(t, []int{2, 6, 8}, sizes, "sorted, active only")
}

func TestCapacityFor(t *testing.T) {
	configs := []*TableConfiguration{
		{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: true},
		{PartySize: 6, TableCount: 1, MaxReservationsPerSlot: 1, IsActive: false},
	}

	tables, maxPerSlot, err := CapacityFor(configs, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)
	assert.Equal(t, 2, maxPerSlot)

	_, _, err = CapacityFor(configs, 6)
	assert.ErrorIs(t, err, ErrPartySizeNotConfigured, "inactive config must not be bookable")

	_, _, err = CapacityFor(configs, 2)
	assert.ErrorIs(t, err, ErrPartySizeNotConfigured, "absent config must not be bookable")
}

func TestTableConfiguration_Validate(t *testing.T) {
	valid := &TableConfiguration{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: true}
	require.NoError(t, valid.Validate())

	// Лимит броней не может превышать число столов, когда столы заданы
	overbooked := &TableConfiguration{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 3}
	assert.ErrorIs(t, overbooked.Validate(), ErrMaxPerSlotExceedsTables)

	// table_count = 0 снимает ограничение по столам
	unbounded := &TableConfiguration{PartySize: 10, TableCount: 0, MaxReservationsPerSlot: 5}
	assert.NoError(t, unbounded.Validate())

	badSize := &TableConfiguration{PartySize: 0, TableCount: 1, MaxReservationsPerSlot: 1}
	assert.ErrorIs(t, badSize.Validate(), ErrInvalidPartySize)
}

func TestGlobalSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultGlobalSettings().Validate())

	badDuration := &GlobalSettings{MaxPartySize: 8, SlotDurationMinutes: 45, AdvanceBookingDays: 30}
	assert.ErrorIs(t, badDuration.Validate(), ErrInvalidSlotDuration)

	badDays := &GlobalSettings{MaxPartySize: 8, SlotDurationMinutes: 30, AdvanceBookingDays: 0}
	assert.ErrorIs(t, badDays.Validate(), ErrInvalidAdvanceDays)
}
