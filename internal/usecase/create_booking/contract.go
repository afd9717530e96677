package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	LockProviderDay(ctx context.Context, providerID int64, date time.Time) error
}

// ProviderRepository интерфейс репозитория мастеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// DurationCalculator считает суммарную длительность услуг у мастера
type DurationCalculator interface {
	TotalDuration(ctx context.Context, providerID int64, serviceIDs []int64) (int, error)
}

// Validator проверяет интервал на рабочие часы, прошлое время и конфликты
type Validator interface {
	Validate(ctx context.Context, providerID int64, candidate domain.TimeInterval) (*availability.Rejection, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	RecordBookingCreated()
	RecordBookingRejection(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
