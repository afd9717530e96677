package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
)

// ConflictSource anything that can block a provider's time on a date.
// Every call reads current persisted state, nothing is cached.
type ConflictSource interface {
	// BlockingIntervals возвращает интервалы, занятые на дату date
	BlockingIntervals(ctx context.Context, providerID int64, date time.Time) ([]domain.TimeInterval, error)
	// Reason причина отказа при пересечении с интервалом этого источника
	Reason() domain.RejectionReason
}

// BookingConflicts бронирования мастера, которые занимают время
// (все, кроме отменённых и no-show)
type BookingConflicts struct {
	bookings BookingRepository
}

// NewBookingConflicts создает источник конфликтов по бронированиям
func NewBookingConflicts(bookings BookingRepository) *BookingConflicts {
	return &BookingConflicts{bookings: bookings}
}

// BlockingIntervals возвращает интервалы активных бронирований, пересекающих дату
func (s *BookingConflicts) BlockingIntervals(ctx context.Context, providerID int64, date time.Time) ([]domain.TimeInterval, error) {
	day := domain.DayBounds(date)

	bookings, err := s.bookings.GetWithFilter(ctx, domain.BookingsFilter{
		ProviderID:      ptr.Ptr(providerID),
		Period:          &day,
		ExcludeStatuses: domain.NonBlockingStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	intervals := make([]domain.TimeInterval, 0, len(bookings))
	for _, b := range bookings {
		// Репозиторий уже исключил эти статусы, повторная проверка защищает от другой реализации
		if !b.Status.BlocksTime() {
			continue
		}
		intervals = append(intervals, b.Interval)
	}

	return intervals, nil
}

// Reason причина отказа
func (s *BookingConflicts) Reason() domain.RejectionReason {
	return domain.RejectionBookingConflict
}

// UnavailabilityConflicts периоды недоступности мастера
type UnavailabilityConflicts struct {
	schedule ScheduleRepository
}

// NewUnavailabilityConflicts создает источник конфликтов по недоступности
func NewUnavailabilityConflicts(schedule ScheduleRepository) *UnavailabilityConflicts {
	return &UnavailabilityConflicts{schedule: schedule}
}

// BlockingIntervals возвращает периоды недоступности, пересекающие дату
func (s *UnavailabilityConflicts) BlockingIntervals(ctx context.Context, providerID int64, date time.Time) ([]domain.TimeInterval, error) {
	unavailabilities, err := s.schedule.GetUnavailabilities(ctx, providerID, domain.DayBounds(date))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get unavailabilities: %w", ErrInternal, err)
	}

	intervals := make([]domain.TimeInterval, 0, len(unavailabilities))
	for _, u := range unavailabilities {
		intervals = append(intervals, u.Interval)
	}

	return intervals, nil
}

// Reason причина отказа
func (s *UnavailabilityConflicts) Reason() domain.RejectionReason {
	return domain.RejectionUnavailabilityConflict
}
