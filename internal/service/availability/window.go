package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/schedule"
)

// WindowResolver определяет рабочее окно мастера на календарную дату
// по недельному шаблону рабочих часов. Недоступность и бронирования не учитываются.
type WindowResolver struct {
	schedule         ScheduleRepository
	defaultIncrement int
	logger           Logger
}

// NewWindowResolver создает резолвер рабочего окна
func NewWindowResolver(schedule ScheduleRepository, defaultIncrementMinutes int, logger Logger) *WindowResolver {
	if defaultIncrementMinutes <= 0 {
		defaultIncrementMinutes = domain.DefaultSlotIncrementMinutes
	}
	return &WindowResolver{
		schedule:         schedule,
		defaultIncrement: defaultIncrementMinutes,
		logger:           logger,
	}
}

// Resolve возвращает рабочее окно на дату. Если записи нет или день нерабочий,
// возвращается окно с IsOpen = false.
func (r *WindowResolver) Resolve(ctx context.Context, providerID int64, date time.Time) (domain.WorkingWindow, error) {
	date = domain.StartOfDay(date)
	closed := domain.WorkingWindow{
		ProviderID: providerID,
		Date:       date,
		DayOfWeek:  date.Weekday(),
		IsOpen:     false,
	}

	hours, err := r.schedule.GetWorkingHours(ctx, providerID, date.Weekday())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
			return closed, nil
		}
		return closed, fmt.Errorf("%w: failed to get working hours: %w", ErrInternal, err)
	}

	if !hours.IsAvailable {
		return closed, nil
	}

	if !hours.StartTime.IsBefore(hours.EndTime) {
		r.logger.Warn("WindowResolver: provider=%d has empty working hours on %s (%s-%s), treating as closed",
			providerID, date.Weekday(), hours.StartTime, hours.EndTime)
		return closed, nil
	}

	increment := hours.SlotIncrementMinutes
	if increment <= 0 {
		increment = r.defaultIncrement
	}

	return domain.WorkingWindow{
		ProviderID:           providerID,
		Date:                 date,
		DayOfWeek:            date.Weekday(),
		Start:                hours.StartTime,
		End:                  hours.EndTime,
		SlotIncrementMinutes: increment,
		IsOpen:               true,
	}, nil
}
