package get_multi_provider_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
)

// CompatibilityMatcher поиск мастеров, оказывающих весь набор услуг
type CompatibilityMatcher interface {
	FindCompatible(ctx context.Context, serviceIDs []int64) ([]*domain.Provider, error)
}

// SlotGenerator генератор доступных слотов
type SlotGenerator interface {
	Generate(ctx context.Context, providerID int64, date time.Time, serviceIDs []int64) (*availability.SlotsResult, error)
}

// Metrics метрики генерации слотов
type Metrics interface {
	ObserveSlotsGenerated(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
