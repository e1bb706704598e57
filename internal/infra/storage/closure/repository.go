package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/nst1k/RST-ReservationService/internal/domain"
	"github.com/nst1k/RST-ReservationService/pkg/dbmetrics"
	"github.com/nst1k/RST-ReservationService/pkg/psqlbuilder"
	"github.com/nst1k/RST-ReservationService/pkg/types"
)

var closureColumns = []string{
	"id",
	"closure_date",
	"name",
	"reason",
	"all_day",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий для работы с закрытиями зала
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о закрытии
// Вызывается только после завершения каскадной отмены конфликтующих броней
func (r *Repository) Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// NULL для закрытий на весь день
	var startTime, endTime interface{}
	if c.StartTime != nil {
		startTime = *c.StartTime
	}
	if c.EndTime != nil {
		endTime = *c.EndTime
	}

	query, args, err := psqlbuilder.Insert("closures").
		Columns(
			"closure_date",
			"name",
			"reason",
			"all_day",
			"start_time",
			"end_time",
		).
		Values(
			c.Date,
			c.Name,
			c.Reason,
			c.AllDay,
			startTime,
			endTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}

// GetAll получает все закрытия, отсортированные по дате
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Closure, error) {
	return r.selectClosures(ctx, nil)
}

// GetByDate получает закрытия, действующие в указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Closure, error) {
	return r.selectClosures(ctx, squirrel.Eq{"closure_date": date})
}

// Delete удаляет закрытие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

func (r *Repository) selectClosures(ctx context.Context, where interface{}) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(closureColumns...).
		From("closures").
		OrderBy("closure_date ASC, all_day DESC, start_time ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectClosures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closures := make([]*domain.Closure, 0)
	for rows.Next() {
		var c domain.Closure
		var createdAt sql.NullTime
		var startTime, endTime types.TimeString

		err := rows.Scan(
			&c.ID,
			&c.Date,
			&c.Name,
			&c.Reason,
			&c.AllDay,
			&startTime,
			&endTime,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: selectClosures - scan row: %v", ErrScanRow, err)
		}

		// start_time/end_time NULL для закрытий на весь день
		if !startTime.IsZero() {
			c.StartTime = &startTime
		}
		if !endTime.IsZero() {
			c.EndTime = &endTime
		}

		c.CreatedAt = createdAt.Time
		closures = append(closures, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}
