package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("17:30")
	require.NoError(t, err)
	assert.Equal(t, "17:30", ts.String())

	for _, bad := range []string{"25:00", "17:60", "1730", "17-30", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "%q must be rejected", bad)
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("12:01").IsAfter("12:00"))
	assert.True(t, TimeString("12:00").Equal("12:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("17:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:15"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err, "crossing midnight is not supported")
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan([]byte("17:00:00")))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan("09:30"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, time.June, 1, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, time.June, 1, 8, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("08:05"), ts)
}
