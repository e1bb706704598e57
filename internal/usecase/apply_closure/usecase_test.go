package apply_closure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/internal/integrations/notifyservice"
	"github.com/nst1k/RST-ReservationService/pkg/ptr"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	cancelErrs   map[int64]error
	cancelled    []int64
	reasons      map[int64]string
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	if err, ok := f.cancelErrs[id]; ok {
		return err
	}
	if f.reasons == nil {
		f.reasons = make(map[int64]string)
	}
	f.cancelled = append(f.cancelled, id)
	f.reasons[id] = reason
	return nil
}

type fakeClosureRepo struct {
	created *domain.Closure
	nextID  int64
}

func (f *fakeClosureRepo) Create(_ context.Context, c *domain.Closure) (*domain.Closure, error) {
	created := *c
	f.nextID++
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakeNotifyClient struct {
	sent []*notifyservice.CancellationNotification
	err  error
}

func (f *fakeNotifyClient) SendCancellation(_ context.Context, n *notifyservice.CancellationNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func testReservations() []*domain.Reservation {
	return []*domain.Reservation{
		{ID: 1, GuestName: "Anna", GuestEmail: "anna@example.com", Date: testDate(), StartTime: "17:00", PartySize: 2, Status: domain.StatusConfirmed},
		{ID: 2, GuestName: "Boris", GuestEmail: "boris@example.com", Date: testDate(), StartTime: "18:00", PartySize: 4, Status: domain.StatusConfirmed},
		{ID: 3, GuestName: "Vera", GuestEmail: "vera@example.com", Date: testDate(), StartTime: "19:00", PartySize: 6, Status: domain.StatusConfirmed},
	}
}

func partialRequest(force bool) *Request {
	return &Request{
		Date:      testDate(),
		Name:      "Banquet",
		StartTime: ptr.Ptr(types.TimeString("17:00")),
		EndTime:   ptr.Ptr(types.TimeString("19:00")),
		Force:     force,
	}
}

func TestExecute_ConflictsRequireConfirmation(t *testing.T) {
	reservationRepo := &fakeReservationRepo{reservations: testReservations()}
	closureRepo := &fakeClosureRepo{}
	notifyClient := &fakeNotifyClient{}
	uc := NewUseCase(reservationRepo, closureRepo, notifyClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), partialRequest(false))
	require.NoError(t, err)

	assert.False(t, resp.Applied)
	assert.True(t, resp.NeedsConfirmation)
	require.Len(t, resp.Conflicts, 3)
	assert.Equal(t, 12, resp.Summary.TotalGuests)

	// Без подтверждения ничего не изменяется
	assert.Nil(t, closureRepo.created)
	assert.Empty(t, reservationRepo.cancelled)
	assert.Empty(t, notifyClient.sent)
}

func TestExecute_ForceCascadesCancellation(t *testing.T) {
	reservationRepo := &fakeReservationRepo{reservations: testReservations()}
	closureRepo := &fakeClosureRepo{}
	notifyClient := &fakeNotifyClient{}
	uc := NewUseCase(reservationRepo, closureRepo, notifyClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), partialRequest(true))
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.False(t, resp.NeedsConfirmation)
	require.NotNil(t, resp.Closure)
	assert.Equal(t, int64(1), resp.Closure.ID)

	assert.Equal(t, []int64{1, 2, 3}, resp.Cancelled)
	assert.Empty(t, resp.Failed)
	assert.Equal(t, "Restaurant closed: Banquet", reservationRepo.reasons[1])

	require.Len(t, notifyClient.sent, 3)
	assert.Equal(t, "anna@example.com", notifyClient.sent[0].GuestEmail)
	assert.Equal(t, "2025-06-01", notifyClient.sent[0].Date)
}

func TestExecute_CancellationFailureDoesNotStopCascade(t *testing.T) {
	dbErr := errors.New("row locked")
	reservationRepo := &fakeReservationRepo{
		reservations: testReservations(),
		cancelErrs:   map[int64]error{2: dbErr},
	}
	closureRepo := &fakeClosureRepo{}
	notifyClient := &fakeNotifyClient{}
	uc := NewUseCase(reservationRepo, closureRepo, notifyClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), partialRequest(true))
	require.NoError(t, err)

	// Сбой одной отмены не прерывает каскад и не отменяет закрытие
	assert.True(t, resp.Applied)
	assert.Equal(t, []int64{1, 3}, resp.Cancelled)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, int64(2), resp.Failed[0].ReservationID)
	assert.ErrorIs(t, resp.Failed[0].Err, dbErr)

	require.NotNil(t, closureRepo.created)
	require.Len(t, notifyClient.sent, 2)
}

func TestExecute_NotificationFailureIsNotFatal(t *testing.T) {
	reservationRepo := &fakeReservationRepo{reservations: testReservations()}
	closureRepo := &fakeClosureRepo{}
	notifyClient := &fakeNotifyClient{err: errors.New("notify service down")}
	uc := NewUseCase(reservationRepo, closureRepo, notifyClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), partialRequest(true))
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.Equal(t, []int64{1, 2, 3}, resp.Cancelled)
	assert.Empty(t, resp.Failed)
}

func TestExecute_NoConflictsAppliesImmediately(t *testing.T) {
	reservationRepo := &fakeReservationRepo{}
	closureRepo := &fakeClosureRepo{}
	notifyClient := &fakeNotifyClient{}
	uc := NewUseCase(reservationRepo, closureRepo, notifyClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), partialRequest(false))
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.False(t, resp.NeedsConfirmation)
	require.NotNil(t, closureRepo.created)
	assert.Empty(t, resp.Cancelled)
}

func TestExecute_ForceWithoutConflictsIsNoopCascade(t *testing.T) {
	// Отменённые брони не считаются конфликтами
	reservationRepo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: 7, Date: testDate(), StartTime: "18:00", PartySize: 2, Status: domain.StatusCancelled},
		},
	}
	closureRepo := &fakeClosureRepo{}
	uc := NewUseCase(reservationRepo, closureRepo, &fakeNotifyClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), partialRequest(true))
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.Empty(t, resp.Cancelled)
	assert.Empty(t, reservationRepo.cancelled)
}

func TestExecute_InvalidClosureWindow(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeClosureRepo{}, &fakeNotifyClient{}, nopLogger{})

	req := partialRequest(false)
	req.EndTime = ptr.Ptr(types.TimeString("16:00"))

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidClosureWindow)
}
