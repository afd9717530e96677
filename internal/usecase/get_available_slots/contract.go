package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
)

// ProviderRepository интерфейс репозитория мастеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
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
