package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/dbmetrics"
	"github.com/nst1k/RST-ReservationService/pkg/psqlbuilder"
)

// singletonID настройки хранятся единственной строкой
const singletonID = 1

// Repository репозиторий для работы с общими настройками бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущий снапшот настроек
func (r *Repository) Get(ctx context.Context) (*domain.GlobalSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"max_party_size",
		"slot_duration_minutes",
		"advance_booking_days",
		"updated_at",
	).
		From("global_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.GlobalSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.MaxPartySize,
		&s.SlotDurationMinutes,
		&s.AdvanceBookingDays,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// Update сохраняет настройки, создавая строку при первом вызове
func (r *Repository) Update(ctx context.Context, s *domain.GlobalSettings) (*domain.GlobalSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("global_settings").
		Columns(
			"id",
			"max_party_size",
			"slot_duration_minutes",
			"advance_booking_days",
		).
		Values(
			singletonID,
			s.MaxPartySize,
			s.SlotDurationMinutes,
			s.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			max_party_size = EXCLUDED.max_party_size,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Update - execute query: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}
