package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// SlotsResult результат генерации слотов для мастера на дату
type SlotsResult struct {
	ProviderID           int64
	Date                 time.Time
	TotalDurationMinutes int
	Window               domain.WorkingWindow
	Slots                []domain.Slot
}

// SlotGenerator генерирует доступные слоты мастера на дату
type SlotGenerator struct {
	windows   *WindowResolver
	durations *DurationCalculator
	sources   []ConflictSource
	clock     TimeProvider
}

// NewSlotGenerator создает генератор слотов.
// sources - источники конфликтов (бронирования, недоступность).
func NewSlotGenerator(
	windows *WindowResolver,
	durations *DurationCalculator,
	sources []ConflictSource,
	clock TimeProvider,
) *SlotGenerator {
	return &SlotGenerator{
		windows:   windows,
		durations: durations,
		sources:   sources,
		clock:     clock,
	}
}

// Generate возвращает упорядоченные по времени начала слоты для набора услуг.
// Нерабочий день дает пустой список, нулевая длительность - ErrInvalidDuration.
func (g *SlotGenerator) Generate(ctx context.Context, providerID int64, date time.Time, serviceIDs []int64) (*SlotsResult, error) {
	duration, err := g.durations.TotalDuration(ctx, providerID, serviceIDs)
	if err != nil {
		return nil, err
	}

	return g.GenerateForDuration(ctx, providerID, date, duration)
}

// GenerateForDuration генерирует слоты для уже известной длительности в минутах
func (g *SlotGenerator) GenerateForDuration(ctx context.Context, providerID int64, date time.Time, durationMinutes int) (*SlotsResult, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d minutes", ErrInvalidDuration, durationMinutes)
	}

	now := g.clock.Now()
	date = inLocationOf(date, now)

	result := &SlotsResult{
		ProviderID:           providerID,
		Date:                 date,
		TotalDurationMinutes: durationMinutes,
		Slots:                []domain.Slot{},
	}

	window, err := g.windows.Resolve(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	result.Window = window

	if !window.IsOpen {
		return result, nil
	}

	increment := window.Increment()
	if increment <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidIncrement, window.SlotIncrementMinutes)
	}

	blocking, err := g.blockingIntervals(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	bounds := window.Bounds()
	duration := time.Duration(durationMinutes) * time.Minute

	for current := firstCandidate(bounds.Start, increment, now); !current.Add(duration).After(bounds.End); current = current.Add(increment) {
		candidate := domain.TimeInterval{Start: current, End: current.Add(duration)}
		if domain.OverlapsAny(candidate, blocking) {
			continue
		}
		result.Slots = append(result.Slots, domain.NewSlot(candidate))
	}

	return result, nil
}

func (g *SlotGenerator) blockingIntervals(ctx context.Context, providerID int64, date time.Time) ([]domain.TimeInterval, error) {
	var blocking []domain.TimeInterval
	for _, source := range g.sources {
		intervals, err := source.BlockingIntervals(ctx, providerID, date)
		if err != nil {
			return nil, err
		}
		blocking = append(blocking, intervals...)
	}
	return blocking, nil
}

// firstCandidate возвращает первое начало слота на сетке windowStart + k*increment,
// строго позже now. Если now раньше начала окна, возвращает начало окна.
//
// Пример: окно с 09:00, шаг 15 минут, now = 10:15 -> 10:30.
func firstCandidate(windowStart time.Time, increment time.Duration, now time.Time) time.Time {
	if now.Before(windowStart) {
		return windowStart
	}
	steps := now.Sub(windowStart)/increment + 1
	return windowStart.Add(steps * increment)
}

// inLocationOf переносит календарную дату date в локацию ref (полночь)
func inLocationOf(date, ref time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}
