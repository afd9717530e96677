package get_multi_provider_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
)

// UseCase use case для получения слотов по всем мастерам, оказывающим набор услуг
type UseCase struct {
	matcher   CompatibilityMatcher
	generator SlotGenerator
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	matcher CompatibilityMatcher,
	generator SlotGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		matcher:   matcher,
		generator: generator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case.
// Мастера, не оказывающие весь набор, не участвуют. Длительность считается отдельно для каждого мастера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMultiProviderSlots: date=%s, services=%v", req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMultiProviderSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Совместимые мастера
	providers, err := uc.matcher.FindCompatible(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetMultiProviderSlots: failed to find compatible providers: %v", err)
		return nil, fmt.Errorf("%w: failed to find compatible providers: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:                domain.StartOfDay(req.Date),
		CompatibleProviders: make([]Provider, 0, len(providers)),
		Slots:               make([]Slot, 0),
	}

	// 3. Слоты каждого мастера
	for _, p := range providers {
		result, err := uc.generator.Generate(ctx, p.ID, req.Date, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, availability.ErrInvalidDuration) || errors.Is(err, availability.ErrServiceNotFound) {
				uc.logger.Warn("GetMultiProviderSlots: skipping provider=%d: %v", p.ID, err)
				continue
			}
			uc.logger.Error("GetMultiProviderSlots: failed to generate slots for provider=%d: %v", p.ID, err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		resp.Date = result.Date
		resp.CompatibleProviders = append(resp.CompatibleProviders, Provider{
			ID:                   p.ID,
			Name:                 p.Name,
			TotalDurationMinutes: result.TotalDurationMinutes,
		})

		for _, s := range result.Slots {
			resp.Slots = append(resp.Slots, Slot{
				ProviderID:      p.ID,
				ProviderName:    p.Name,
				StartTime:       s.StartTime,
				EndTime:         s.EndTime,
				Start:           s.Interval.Start,
				End:             s.Interval.End,
				DurationMinutes: s.DurationMinutes,
			})
		}
	}

	sort.SliceStable(resp.Slots, func(i, j int) bool {
		a, b := resp.Slots[i], resp.Slots[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ProviderID < b.ProviderID
	})

	uc.metrics.ObserveSlotsGenerated(len(resp.Slots))
	uc.logger.Info("GetMultiProviderSlots: %d providers, %d slots on %s",
		len(resp.CompatibleProviders), len(resp.Slots), resp.Date.Format(domain.DateFormat))

	return resp, nil
}
