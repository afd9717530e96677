package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// BookingValidator проверяет конкретный интервал перед созданием бронирования.
// Использует те же WindowResolver, ConflictSource и domain.Overlaps, что и SlotGenerator,
// поэтому слот, выданный генератором, проходит проверку в тот же момент времени.
type BookingValidator struct {
	windows *WindowResolver
	sources []ConflictSource
	clock   TimeProvider
}

// NewBookingValidator создает валидатор. Порядок sources определяет порядок проверок:
// сначала бронирования, затем недоступность.
func NewBookingValidator(windows *WindowResolver, sources []ConflictSource, clock TimeProvider) *BookingValidator {
	return &BookingValidator{
		windows: windows,
		sources: sources,
		clock:   clock,
	}
}

// Validate возвращает nil, если интервал можно забронировать, иначе *Rejection.
// error возвращается только при сбоях источников данных.
func (v *BookingValidator) Validate(ctx context.Context, providerID int64, candidate domain.TimeInterval) (*Rejection, error) {
	now := v.clock.Now()
	date := candidate.Start.In(now.Location())

	// 1. Рабочее окно
	window, err := v.windows.Resolve(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	if !window.IsOpen || !window.Bounds().Contains(candidate) {
		return &Rejection{Reason: domain.RejectionOutsideWorkingHours}, nil
	}

	// 2. Время в прошлом
	if candidate.Start.Before(now) {
		return &Rejection{Reason: domain.RejectionPastTime}, nil
	}

	// 3-4. Бронирования, затем недоступность
	for _, source := range v.sources {
		intervals, err := source.BlockingIntervals(ctx, providerID, date)
		if err != nil {
			return nil, err
		}
		for _, busy := range intervals {
			if domain.Overlaps(candidate, busy) {
				conflict := busy
				return &Rejection{Reason: source.Reason(), Conflict: &conflict}, nil
			}
		}
	}

	return nil, nil
}

// Candidate строит интервал бронирования по началу и длительности
func Candidate(start time.Time, durationMinutes int) (domain.TimeInterval, error) {
	if durationMinutes <= 0 {
		return domain.TimeInterval{}, ErrInvalidDuration
	}
	return domain.NewTimeIntervalFromDuration(start, durationMinutes)
}
