package create_reservation

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
	created      *domain.Reservation
	nextID       int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	f.nextID++
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fakeClosureRepo struct {
	closures []*domain.Closure
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Closure, error) {
	return f.closures, nil
}

type fakeTableConfigRepo struct {
	configs []*domain.TableConfiguration
}

func (f *fakeTableConfigRepo) GetAll(_ context.Context) ([]*domain.TableConfiguration, error) {
	return f.configs, nil
}

type fakeSettingsRepo struct {
	settings *domain.GlobalSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.GlobalSettings, error) {
	return f.settings, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc              *UseCase
	reservationRepo *fakeReservationRepo
	txManager       *fakeTxManager
}

func newFixture(reservations []*domain.Reservation, closures []*domain.Closure) *fixture {
	reservationRepo := &fakeReservationRepo{reservations: reservations}
	txManager := &fakeTxManager{}

	configs := []*domain.TableConfiguration{
		{PartySize: 2, TableCount: 4, MaxReservationsPerSlot: 4, IsActive: true},
		{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: true},
	}

	uc := NewUseCase(
		reservationRepo,
		&fakeClosureRepo{closures: closures},
		&fakeTableConfigRepo{configs: configs},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		txManager,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, reservationRepo: reservationRepo, txManager: txManager}
}

func validRequest() *Request {
	return &Request{
		GuestName:  "Anna Petrova",
		GuestEmail: "anna@example.com",
		PartySize:  2,
		Date:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), // воскресенье
		StartTime:  "18:00",
	}
}

func TestExecute_CreatesConfirmedReservation(t *testing.T) {
	f := newFixture(nil, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Reservation)
	assert.Equal(t, domain.StatusConfirmed, resp.Reservation.Status)
	assert.Equal(t, int64(1), resp.Reservation.ID)
	assert.Equal(t, types.TimeString("18:00"), resp.Reservation.StartTime)
	assert.Equal(t, 1, f.txManager.calls)
}

func TestExecute_SlotFull(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Лимит для размера 4: 2 брони на слот; места занимают все неотменённые
	existing := []*domain.Reservation{
		{ID: 1, Date: date, StartTime: "18:00", PartySize: 4, Status: domain.StatusConfirmed},
		{ID: 2, Date: date, StartTime: "18:00", PartySize: 2, Status: domain.StatusCompleted},
	}

	f := newFixture(existing, nil)

	req := validRequest()
	req.PartySize = 4

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotFull)
	assert.Nil(t, f.reservationRepo.created)
}

func TestExecute_CancelledFreesSlot(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	existing := []*domain.Reservation{
		{ID: 1, Date: date, StartTime: "18:00", PartySize: 4, Status: domain.StatusConfirmed},
		{ID: 2, Date: date, StartTime: "18:00", PartySize: 4, Status: domain.StatusCancelled},
	}

	f := newFixture(existing, nil)

	req := validRequest()
	req.PartySize = 4

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Reservation.Status)
}

func TestExecute_Closed(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	closures := []*domain.Closure{
		{
			Date:      date,
			Name:      "Banquet",
			StartTime: ptr.Ptr(types.TimeString("17:00")),
			EndTime:   ptr.Ptr(types.TimeString("19:00")),
		},
	}

	f := newFixture(nil, closures)

	// Граница окна закрытия включается: бронь ровно на 19:00 блокируется
	req := validRequest()
	req.StartTime = "19:00"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrClosed)

	req.StartTime = "19:30"
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	f := newFixture(nil, nil)

	// Воскресенье открыто с 12:00
	req := validRequest()
	req.StartTime = "11:00"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideOperatingHours)

	// 22:00 - время закрытия, слот на него не существует
	req.StartTime = "22:00"
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_BookingWindow(t *testing.T) {
	f := newFixture(nil, nil)

	// Дата в прошлом
	req := validRequest()
	req.Date = time.Date(2025, time.May, 19, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrPastAdvanceWindow)

	// Дальше advance_booking_days (30 дней от 2025-05-20)
	req.Date = time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrPastAdvanceWindow)

	// Последний день окна включается (2025-06-19, четверг, 18:00 валидно)
	req.Date = time.Date(2025, time.June, 19, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_UnsupportedPartySize(t *testing.T) {
	f := newFixture(nil, nil)

	// Нет конфигурации для размера 3
	req := validRequest()
	req.PartySize = 3
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrUnsupportedPartySize)

	// Больше max_party_size из настроек
	req.PartySize = 9
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrUnsupportedPartySize)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(nil, nil)

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty guest name", func(r *Request) { r.GuestName = "" }},
		{"empty email", func(r *Request) { r.GuestEmail = "" }},
		{"zero party size", func(r *Request) { r.PartySize = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"bad time format", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
