package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов и периодов недоступности мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours получает рабочие часы мастера на день недели
func (r *Repository) GetWorkingHours(ctx context.Context, providerID int64, dayOfWeek time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
		"slot_increment_minutes",
		"is_available",
	).
		From("working_hours").
		Where(squirrel.Eq{
			"provider_id": providerID,
			"day_of_week": int(dayOfWeek),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.WorkingHours
	var day int

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.ProviderID,
		&day,
		&hours.StartTime,
		&hours.EndTime,
		&hours.SlotIncrementMinutes,
		&hours.IsAvailable,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan working hours: %w", ErrScanRow, err)
	}

	hours.DayOfWeek = time.Weekday(day)

	return &hours, nil
}

// ListWorkingHours получает недельный шаблон мастера, упорядоченный по дню недели
func (r *Repository) ListWorkingHours(ctx context.Context, providerID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
		"slot_increment_minutes",
		"is_available",
	).
		From("working_hours").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0, 7)
	for rows.Next() {
		var hours domain.WorkingHours
		var day int
		if err := rows.Scan(
			&hours.ID,
			&hours.ProviderID,
			&day,
			&hours.StartTime,
			&hours.EndTime,
			&hours.SlotIncrementMinutes,
			&hours.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: ListWorkingHours - scan row: %w", ErrScanRow, err)
		}
		hours.DayOfWeek = time.Weekday(day)
		result = append(result, &hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// GetUnavailabilities получает периоды недоступности мастера, пересекающие period
func (r *Repository) GetUnavailabilities(ctx context.Context, providerID int64, period domain.TimeInterval) ([]*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"start_at",
		"end_at",
		"reason",
	).
		From("unavailabilities").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Lt{"start_at": period.End}).
		Where(squirrel.Gt{"end_at": period.Start}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUnavailabilities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnavailabilities - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Unavailability, 0)
	for rows.Next() {
		var u domain.Unavailability
		var reason sql.NullString
		if err := rows.Scan(&u.ID, &u.ProviderID, &u.Interval.Start, &u.Interval.End, &reason); err != nil {
			return nil, fmt.Errorf("%w: GetUnavailabilities - scan row: %w", ErrScanRow, err)
		}
		if reason.Valid {
			u.Reason = &reason.String
		}
		result = append(result, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetUnavailabilities - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}
