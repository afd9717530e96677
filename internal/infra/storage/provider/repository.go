package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий мастеров и каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Provider
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %w", ErrScanRow, err)
	}

	return &p, nil
}

// List получает всех мастеров, упорядоченных по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Provider, error) {
	return r.list(ctx, "List", nil)
}

// GetByIDs получает мастеров по списку ID, упорядоченных по ID.
// Неизвестные ID пропускаются.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Provider, error) {
	if len(ids) == 0 {
		return []*domain.Provider{}, nil
	}
	return r.list(ctx, "GetByIDs", squirrel.Eq{"id": ids})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("providers").
		OrderBy("id ASC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		providers = append(providers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return providers, nil
}

// ListServices получает каталог услуг, упорядоченный по ID
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "created_at", "updated_at").
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		var description sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %w", ErrScanRow, err)
		}
		if description.Valid {
			s.Description = &description.String
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// ListOfferedServices получает услуги мастера с его длительностью и ценой, упорядоченные по ID услуги
func (r *Repository) ListOfferedServices(ctx context.Context, providerID int64) ([]domain.OfferedService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"ps.provider_id",
		"ps.service_id",
		"s.name",
		"ps.duration_minutes",
		"ps.price",
	).
		From("provider_services ps").
		Join("services s ON s.id = ps.service_id").
		Where(squirrel.Eq{"ps.provider_id": providerID}).
		OrderBy("ps.service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOfferedServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOfferedServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	offered := make([]domain.OfferedService, 0)
	for rows.Next() {
		var s domain.OfferedService
		var price sql.NullFloat64
		if err := rows.Scan(&s.ProviderID, &s.ServiceID, &s.ServiceName, &s.DurationMinutes, &price); err != nil {
			return nil, fmt.Errorf("%w: ListOfferedServices - scan row: %w", ErrScanRow, err)
		}
		if price.Valid {
			s.Price = &price.Float64
		}
		offered = append(offered, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOfferedServices - rows error: %w", ErrScanRow, err)
	}

	return offered, nil
}

// GetOfferedServices получает услуги мастера, индексированные по ID услуги
func (r *Repository) GetOfferedServices(ctx context.Context, providerID int64) (map[int64]domain.OfferedService, error) {
	list, err := r.ListOfferedServices(ctx, providerID)
	if err != nil {
		return nil, err
	}

	offered := make(map[int64]domain.OfferedService, len(list))
	for _, s := range list {
		offered[s.ServiceID] = s
	}
	return offered, nil
}

// GetOfferings для каждого мастера возвращает, какие из serviceIDs он оказывает.
// Мастера, не оказывающие ни одной из услуг, в результат не попадают.
func (r *Repository) GetOfferings(ctx context.Context, serviceIDs []int64) (map[int64][]int64, error) {
	offerings := make(map[int64][]int64)
	if len(serviceIDs) == 0 {
		return offerings, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("provider_id", "service_id").
		From("provider_services").
		Where(squirrel.Eq{"service_id": serviceIDs}).
		OrderBy("provider_id ASC", "service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferings - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var providerID, serviceID int64
		if err := rows.Scan(&providerID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: GetOfferings - scan row: %w", ErrScanRow, err)
		}
		offerings[providerID] = append(offerings[providerID], serviceID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOfferings - rows error: %w", ErrScanRow, err)
	}

	return offerings, nil
}
