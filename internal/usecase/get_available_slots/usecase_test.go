package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	settingsRepo "github.com/nst1k/RST-ReservationService/internal/infra/storage/settings"
	"github.com/nst1k/RST-ReservationService/pkg/ptr"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeClosureRepo struct {
	closures []*domain.Closure
	err      error
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Closure, error) {
	return f.closures, f.err
}

type fakeTableConfigRepo struct {
	configs []*domain.TableConfiguration
	err     error
}

func (f *fakeTableConfigRepo) GetAll(_ context.Context) ([]*domain.TableConfiguration, error) {
	return f.configs, f.err
}

type fakeSettingsRepo struct {
	settings *domain.GlobalSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.GlobalSettings, error) {
	return f.settings, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultConfigs() []*domain.TableConfiguration {
	return []*domain.TableConfiguration{
		{PartySize: 2, TableCount: 4, MaxReservationsPerSlot: 4, IsActive: true},
		{PartySize: 4, TableCount: 2, MaxReservationsPerSlot: 2, IsActive: true},
	}
}

func newTestUseCase(
	reservations *fakeReservationRepo,
	closures *fakeClosureRepo,
	configs *fakeTableConfigRepo,
	settings *fakeSettingsRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(reservations, closures, configs, settings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_SundaySlots(t *testing.T) {
	// Воскресенье 2025-06-01, рабочие часы 12:00-22:00, слот 30 минут
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeClosureRepo{},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, PartySize: 2})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 20)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("21:30"), resp.Slots[len(resp.Slots)-1].StartTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
		assert.Empty(t, slot.Reason)
	}
}

func TestExecute_ClosureAndFullSlot(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	closures := []*domain.Closure{
		{
			Date:      date,
			Name:      "Private event",
			StartTime: ptr.Ptr(types.TimeString("14:00")),
			EndTime:   ptr.Ptr(types.TimeString("16:00")),
		},
	}

	// Лимит для компании из 4 человек: 2 брони на слот
	reservations := []*domain.Reservation{
		{ID: 1, Date: date, StartTime: "18:00", PartySize: 4, Status: domain.StatusConfirmed},
		{ID: 2, Date: date, StartTime: "18:00", PartySize: 4, Status: domain.StatusConfirmed},
	}

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: reservations},
		&fakeClosureRepo{closures: closures},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, PartySize: 4})
	require.NoError(t, err)

	byTime := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.StartTime] = s
	}

	// Закрытие 14:00-16:00 включительно с обеих сторон
	assert.False(t, byTime["14:00"].Available)
	assert.Equal(t, domain.ReasonClosed, byTime["14:00"].Reason)
	assert.False(t, byTime["16:00"].Available)
	assert.Equal(t, domain.ReasonClosed, byTime["16:00"].Reason)
	assert.True(t, byTime["13:30"].Available)
	assert.True(t, byTime["16:30"].Available)

	// Слот 18:00 заполнен для размера группы 4
	assert.False(t, byTime["18:00"].Available)
	assert.Equal(t, domain.ReasonSlotFull, byTime["18:00"].Reason)
	assert.True(t, byTime["18:30"].Available)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	date := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeClosureRepo{},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, PartySize: 2})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnsupportedPartySize(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeClosureRepo{},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{Date: date, PartySize: 7})
	require.ErrorIs(t, err, ErrUnsupportedPartySize)
}

func TestExecute_DefaultSettingsFallback(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeClosureRepo{},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, PartySize: 2})
	require.NoError(t, err)
	// Дефолтный слот 30 минут: 20 слотов в воскресенье
	assert.Len(t, resp.Slots, 20)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeClosureRepo{},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{PartySize: 2})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: now, PartySize: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoErrorIsInternal(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{err: errors.New("db down")},
		&fakeClosureRepo{},
		&fakeTableConfigRepo{configs: defaultConfigs()},
		&fakeSettingsRepo{settings: domain.DefaultGlobalSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{Date: date, PartySize: 2})
	require.ErrorIs(t, err, ErrInternal)
}
