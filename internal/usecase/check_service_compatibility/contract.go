package check_service_compatibility

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// CompatibilityMatcher поиск мастеров, оказывающих весь набор услуг
type CompatibilityMatcher interface {
	FindCompatible(ctx context.Context, serviceIDs []int64) ([]*domain.Provider, error)
	IncompatibleServices(ctx context.Context, serviceIDs []int64) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
