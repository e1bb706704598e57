package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst1k/RST-ReservationService/pkg/ptr"
)

func TestFindConflicts_PartialClosure(t *testing.T) {
	d := date(2025, time.June, 1)
	closure := partialClosure(d, "17:00", "19:00")

	inside := confirmedAt(1, d, "18:00", 4)
	outside := confirmedAt(2, d, "16:30", 2)
	boundary := confirmedAt(3, d, "19:00", 2)
	otherDay := confirmedAt(4, date(2025, time.June, 2), "18:00", 4)

	cancelled := confirmedAt(5, d, "18:00", 4)
	cancelled.Status = StatusCancelled

	conflicts := FindConflicts(closure, []*Reservation{inside, outside, boundary, otherDay, cancelled})

	require.Len(t, conflicts, 2)
	assert.Equal(t, int64(1), conflicts[0].ID)
	assert.Equal(t, int64(3), conflicts[1].ID, "reservation exactly at closure end conflicts too")
}

func TestFindConflicts_AllDay(t *testing.T) {
	d := date(2025, time.June, 1)
	closure := &Closure{ID: 1, Date: d, Name: "Renovation", AllDay: true}

	reservations := []*Reservation{
		confirmedAt(1, d, "12:00", 2),
		confirmedAt(2, d, "21:30", 6),
		confirmedAt(3, date(2025, time.June, 2), "18:00", 4),
	}

	conflicts := FindConflicts(closure, reservations)
	require.Len(t, conflicts, 2)
}

func TestFindConflicts_Idempotent(t *testing.T) {
	d := date(2025, time.June, 1)
	closure := partialClosure(d, "17:00", "19:00")
	reservations := []*Reservation{
		confirmedAt(1, d, "18:00", 4),
		confirmedAt(2, d, "17:30", 2),
	}

	first := FindConflicts(closure, reservations)
	second := FindConflicts(closure, reservations)
	assert.Equal(t, first, second, "same data must yield the same conflict set")
}

func TestSummarizeConflicts(t *testing.T) {
	d := date(2025, time.June, 1)

	withNote := confirmedAt(1, d, "18:00", 4)
	withNote.Notes = ptr.Ptr("window table please")

	conflicts := []*Reservation{
		withNote,
		confirmedAt(2, d, "17:00", 2),
		confirmedAt(3, d, "19:00", 6),
	}

	summary := SummarizeConflicts(conflicts)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 12, summary.TotalGuests)
	assert.Equal(t, "17:00", summary.EarliestTime.String())
	assert.Equal(t, "19:00", summary.LatestTime.String())
	assert.True(t, summary.HasSpecialRequests)
}

func TestSummarizeConflicts_Empty(t *testing.T) {
	summary := SummarizeConflicts(nil)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0, summary.TotalGuests)
	assert.False(t, summary.HasSpecialRequests)
	assert.True(t, summary.EarliestTime.IsZero())
}

func TestReservation_StatusTransitions(t *testing.T) {
	r := confirmedAt(1, date(2025, time.June, 1), "18:00", 4)

	assert.True(t, r.CanTransitionTo(StatusCompleted))
	assert.True(t, r.CanTransitionTo(StatusNoShow))
	assert.True(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusCancelled
	assert.True(t, r.CanTransitionTo(StatusConfirmed), "cancelled can be restored")
	assert.False(t, r.CanTransitionTo(StatusCompleted))

	r.Status = StatusCompleted
	assert.False(t, r.CanTransitionTo(StatusConfirmed), "completed is terminal")
}
