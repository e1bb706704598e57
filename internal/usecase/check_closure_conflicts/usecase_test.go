package check_closure_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/ptr"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	calls        int
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.calls++
	return f.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func testReservations() []*domain.Reservation {
	notes := "Window seat please"
	return []*domain.Reservation{
		{ID: 1, GuestName: "Anna", GuestEmail: "anna@example.com", Date: testDate(), StartTime: "17:00", PartySize: 2, Status: domain.StatusConfirmed},
		{ID: 2, GuestName: "Boris", GuestEmail: "boris@example.com", Date: testDate(), StartTime: "18:00", PartySize: 4, Notes: &notes, Status: domain.StatusConfirmed},
		{ID: 3, GuestName: "Vera", GuestEmail: "vera@example.com", Date: testDate(), StartTime: "19:00", PartySize: 6, Status: domain.StatusConfirmed},
		{ID: 4, GuestName: "Gleb", GuestEmail: "gleb@example.com", Date: testDate(), StartTime: "18:00", PartySize: 2, Status: domain.StatusCancelled},
		{ID: 5, GuestName: "Dina", GuestEmail: "dina@example.com", Date: testDate(), StartTime: "20:00", PartySize: 2, Status: domain.StatusConfirmed},
	}
}

func TestExecute_PartialClosureConflicts(t *testing.T) {
	repo := &fakeReservationRepo{reservations: testReservations()}
	uc := NewUseCase(repo, nopLogger{})

	req := &Request{
		Date:      testDate(),
		Name:      "Banquet",
		StartTime: ptr.Ptr(types.TimeString("17:00")),
		EndTime:   ptr.Ptr(types.TimeString("19:00")),
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Окно включает обе границы: броня ровно на 19:00 конфликтует,
	// отменённая броня и броня на 20:00 - нет
	require.Len(t, resp.Conflicts, 3)
	assert.Equal(t, int64(1), resp.Conflicts[0].ReservationID)
	assert.Equal(t, int64(2), resp.Conflicts[1].ReservationID)
	assert.Equal(t, int64(3), resp.Conflicts[2].ReservationID)
	assert.True(t, resp.Conflicts[1].HasSpecialRequests)

	assert.Equal(t, 3, resp.Summary.Count)
	assert.Equal(t, 12, resp.Summary.TotalGuests)
	assert.Equal(t, types.TimeString("17:00"), resp.Summary.EarliestTime)
	assert.Equal(t, types.TimeString("19:00"), resp.Summary.LatestTime)
	assert.True(t, resp.Summary.HasSpecialRequests)
}

func TestExecute_AllDayClosure(t *testing.T) {
	repo := &fakeReservationRepo{reservations: testReservations()}
	uc := NewUseCase(repo, nopLogger{})

	req := &Request{Date: testDate(), Name: "Renovation", AllDay: true}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Все подтверждённые брони дня, отменённая не считается
	require.Len(t, resp.Conflicts, 4)
	assert.Equal(t, 4, resp.Summary.Count)
}

func TestExecute_NoConflicts(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, nopLogger{})

	req := &Request{Date: testDate(), Name: "Renovation", AllDay: true}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, 0, resp.Summary.Count)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeReservationRepo{reservations: testReservations()}
	uc := NewUseCase(repo, nopLogger{})

	req := &Request{
		Date:      testDate(),
		Name:      "Banquet",
		StartTime: ptr.Ptr(types.TimeString("17:00")),
		EndTime:   ptr.Ptr(types.TimeString("19:00")),
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Проверка ничего не изменяет: повторный вызов даёт тот же отчёт
	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.calls)
}

func TestExecute_InvalidClosureWindow(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{
			"start after end",
			&Request{Date: testDate(), Name: "Banquet", StartTime: ptr.Ptr(types.TimeString("19:00")), EndTime: ptr.Ptr(types.TimeString("17:00"))},
		},
		{
			"start equals end",
			&Request{Date: testDate(), Name: "Banquet", StartTime: ptr.Ptr(types.TimeString("17:00")), EndTime: ptr.Ptr(types.TimeString("17:00"))},
		},
		{
			"missing end",
			&Request{Date: testDate(), Name: "Banquet", StartTime: ptr.Ptr(types.TimeString("17:00"))},
		},
		{
			"partial without bounds",
			&Request{Date: testDate(), Name: "Banquet"},
		},
		{
			"empty name",
			&Request{Date: testDate(), AllDay: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidClosureWindow)
		})
	}
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Name: "Banquet", AllDay: true})
	require.ErrorIs(t, err, ErrInvalidInput)
}
