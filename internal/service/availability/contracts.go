package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// BookingRepository источник существующих бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository источник рабочих часов и периодов недоступности
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context, providerID int64, dayOfWeek time.Weekday) (*domain.WorkingHours, error)
	GetUnavailabilities(ctx context.Context, providerID int64, period domain.TimeInterval) ([]*domain.Unavailability, error)
}

// ProviderRepository конфигурация мастеров и оказываемых ими услуг
type ProviderRepository interface {
	GetOfferedServices(ctx context.Context, providerID int64) (map[int64]domain.OfferedService, error)
	GetOfferings(ctx context.Context, serviceIDs []int64) (map[int64][]int64, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Provider, error)
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

// RealTimeProvider реальный провайдер времени в заданной локации
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
