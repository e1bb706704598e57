package tableconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/dbmetrics"
	"github.com/nst1k/RST-ReservationService/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"party_size",
	"table_count",
	"max_reservations_per_slot",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурациями столов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций столов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все конфигурации, отсортированные по размеру компании
func (r *Repository) GetAll(ctx context.Context) ([]*domain.TableConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("table_configurations").
		OrderBy("party_size ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.TableConfiguration, 0)
	for rows.Next() {
		config, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// GetByPartySize получает конфигурацию для размера компании
func (r *Repository) GetByPartySize(ctx context.Context, partySize int) (*domain.TableConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("table_configurations").
		Where(squirrel.Eq{"party_size": partySize}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPartySize - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPartySize - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// Upsert создает или обновляет конфигурацию для размера компании
// party_size уникален, поэтому конфликт разрешается обновлением
func (r *Repository) Upsert(ctx context.Context, config *domain.TableConfiguration) (*domain.TableConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("table_configurations").
		Columns(
			"party_size",
			"table_count",
			"max_reservations_per_slot",
			"is_active",
		).
		Values(
			config.PartySize,
			config.TableCount,
			config.MaxReservationsPerSlot,
			config.IsActive,
		).
		Suffix(`ON CONFLICT (party_size) DO UPDATE SET
			table_count = EXCLUDED.table_count,
			max_reservations_per_slot = EXCLUDED.max_reservations_per_slot,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute query: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (*domain.TableConfiguration, error) {
	var config domain.TableConfiguration
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.PartySize,
		&config.TableCount,
		&config.MaxReservationsPerSlot,
		&config.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
