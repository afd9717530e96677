package availability

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

var errStorage = errors.New("storage is down")

// 2026-10-20 вторник
func day() time.Time {
	return time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
}

func at(hour, minute int) time.Time {
	return day().Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func span(fromH, fromM, toH, toM int) domain.TimeInterval {
	return domain.TimeInterval{Start: at(fromH, fromM), End: at(toH, toM)}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeBookings struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (f *fakeBookings) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.ProviderID != nil && b.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.Period != nil && !domain.Overlaps(b.Interval, *filter.Period) {
			continue
		}
		excluded := false
		for _, s := range filter.ExcludeStatuses {
			if b.Status == s {
				excluded = true
			}
		}
		if excluded {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeSchedule struct {
	hours            map[int64]map[time.Weekday]*domain.WorkingHours
	unavailabilities []*domain.Unavailability
	err              error
}

func newFakeSchedule() *fakeSchedule {
	return &fakeSchedule{hours: make(map[int64]map[time.Weekday]*domain.WorkingHours)}
}

func (f *fakeSchedule) open(providerID int64, weekday time.Weekday, start, end types.TimeString, increment int) {
	if f.hours[providerID] == nil {
		f.hours[providerID] = make(map[time.Weekday]*domain.WorkingHours)
	}
	f.hours[providerID][weekday] = &domain.WorkingHours{
		ProviderID:           providerID,
		DayOfWeek:            weekday,
		StartTime:            start,
		EndTime:              end,
		SlotIncrementMinutes: increment,
		IsAvailable:          true,
	}
}

func (f *fakeSchedule) GetWorkingHours(_ context.Context, providerID int64, weekday time.Weekday) (*domain.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	h, ok := f.hours[providerID][weekday]
	if !ok {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return h, nil
}

func (f *fakeSchedule) GetUnavailabilities(_ context.Context, providerID int64, period domain.TimeInterval) ([]*domain.Unavailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Unavailability, 0)
	for _, u := range f.unavailabilities {
		if u.ProviderID == providerID && domain.Overlaps(u.Interval, period) {
			result = append(result, u)
		}
	}
	return result, nil
}

type fakeProviders struct {
	providers map[int64]*domain.Provider
	offered   map[int64]map[int64]domain.OfferedService
	err       error
}

func newFakeProviders() *fakeProviders {
	return &fakeProviders{
		providers: make(map[int64]*domain.Provider),
		offered:   make(map[int64]map[int64]domain.OfferedService),
	}
}

func (f *fakeProviders) add(id int64, name string, services map[int64]int) {
	f.providers[id] = &domain.Provider{ID: id, Name: name}
	f.offered[id] = make(map[int64]domain.OfferedService, len(services))
	for serviceID, minutes := range services {
		f.offered[id][serviceID] = domain.OfferedService{
			ProviderID:      id,
			ServiceID:       serviceID,
			DurationMinutes: minutes,
		}
	}
}

func (f *fakeProviders) GetOfferedServices(_ context.Context, providerID int64) (map[int64]domain.OfferedService, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[int64]domain.OfferedService)
	for id, s := range f.offered[providerID] {
		result[id] = s
	}
	return result, nil
}

func (f *fakeProviders) GetOfferings(_ context.Context, serviceIDs []int64) (map[int64][]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[int64][]int64)
	for providerID, offered := range f.offered {
		for _, id := range serviceIDs {
			if _, ok := offered[id]; ok {
				result[providerID] = append(result[providerID], id)
			}
		}
	}
	return result, nil
}

func (f *fakeProviders) GetByIDs(_ context.Context, ids []int64) ([]*domain.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Provider, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.providers[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

// engine собирает генератор и валидатор поверх общих фейков
type engine struct {
	bookings  *fakeBookings
	schedule  *fakeSchedule
	providers *fakeProviders
	clock     *fixedClock
	generator *SlotGenerator
	validator *BookingValidator
}

func newEngine(now time.Time, strict bool) *engine {
	e := &engine{
		bookings:  &fakeBookings{},
		schedule:  newFakeSchedule(),
		providers: newFakeProviders(),
		clock:     &fixedClock{now: now},
	}

	windows := NewWindowResolver(e.schedule, domain.DefaultSlotIncrementMinutes, logger.Nop())
	sources := []ConflictSource{
		NewBookingConflicts(e.bookings),
		NewUnavailabilityConflicts(e.schedule),
	}
	e.generator = NewSlotGenerator(windows, NewDurationCalculator(e.providers, strict), sources, e.clock)
	e.validator = NewBookingValidator(windows, sources, e.clock)
	return e
}

func (e *engine) book(providerID int64, interval domain.TimeInterval, status domain.BookingStatus) {
	e.bookings.bookings = append(e.bookings.bookings, &domain.Booking{
		ID:         int64(len(e.bookings.bookings) + 1),
		ProviderID: providerID,
		Interval:   interval,
		Status:     status,
	})
}

func (e *engine) unavailable(providerID int64, interval domain.TimeInterval) {
	e.schedule.unavailabilities = append(e.schedule.unavailabilities, &domain.Unavailability{
		ID:         int64(len(e.schedule.unavailabilities) + 1),
		ProviderID: providerID,
		Interval:   interval,
	})
}

func starts(slots []domain.Slot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime.String())
	}
	return result
}
