package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// ProviderRepository интерфейс репозитория мастеров и услуг
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context) ([]*domain.Provider, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListOfferedServices(ctx context.Context, providerID int64) ([]domain.OfferedService, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListWorkingHours(ctx context.Context, providerID int64) ([]*domain.WorkingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
