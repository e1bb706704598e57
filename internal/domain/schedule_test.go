package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst1k/RST-ReservationService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSlotsForDate_WeekdayBands(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time // 2025-06-02 is a Monday
		wantFirst types.TimeString
		wantLast  types.TimeString
	}{
		{"monday short day", date(2025, time.June, 2), "17:00", "20:30"},
		{"tuesday short day", date(2025, time.June, 3), "17:00", "20:30"},
		{"wednesday medium day", date(2025, time.June, 4), "17:00", "21:30"},
		{"friday medium day", date(2025, time.June, 6), "17:00", "21:30"},
		{"saturday long day", date(2025, time.June, 7), "12:00", "21:30"},
		{"sunday long day", date(2025, time.June, 8), "12:00", "21:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := SlotsForDate(tt.date, 30)
			require.NotEmpty(t, slots)
			assert.Equal(t, tt.wantFirst, slots[0])
			assert.Equal(t, tt.wantLast, slots[len(slots)-1])
		})
	}
}

func TestSlotsForDate_HalfOpenInterval(t *testing.T) {
	// Понедельник, работа 17:00-21:00: слот ровно в 21:00 не генерируется
	monday := date(2025, time.June, 2)

	for _, duration := range AllowedSlotDurations {
		slots := SlotsForDate(monday, duration)
		require.NotEmpty(t, slots)

		hours, ok := OperatingHoursForDate(monday)
		require.True(t, ok)

		for _, slot := range slots {
			assert.True(t, slot.IsBefore(hours.CloseTime),
				"slot %s must be strictly before closing %s", slot, hours.CloseTime)
			assert.False(t, slot.IsBefore(hours.OpenTime),
				"slot %s must not be before opening %s", slot, hours.OpenTime)
		}
	}
}

func TestSlotsForDate_Spacing(t *testing.T) {
	saturday := date(2025, time.June, 7)

	slots := SlotsForDate(saturday, 15)
	require.Greater(t, len(slots), 1)

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, 15, cur-prev, "slots must be spaced exactly 15 minutes apart")
	}
}

func TestSlotsForDate_SlotCounts(t *testing.T) {
	// Короткий день 4 часа: 8 слотов по 30 минут, 4 по 60
	monday := date(2025, time.June, 2)
	assert.Len(t, SlotsForDate(monday, 30), 8)
	assert.Len(t, SlotsForDate(monday, 60), 4)

	// Длинный день 10 часов
	sunday := date(2025, time.June, 8)
	assert.Len(t, SlotsForDate(sunday, 30), 20)
	assert.Len(t, SlotsForDate(sunday, 15), 40)
}

func TestIsSlotTime(t *testing.T) {
	monday := date(2025, time.June, 2)

	assert.True(t, IsSlotTime(monday, "17:00", 30))
	assert.True(t, IsSlotTime(monday, "20:30", 30))
	assert.False(t, IsSlotTime(monday, "21:00", 30), "closing time is not a slot")
	assert.False(t, IsSlotTime(monday, "17:15", 30), "off-grid time is not a slot")
	assert.False(t, IsSlotTime(monday, "12:00", 30), "before opening on a short day")
}
