package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	providerRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	providerRepo ProviderRepository
	generator    SlotGenerator
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providerRepo ProviderRepository,
	generator SlotGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo: providerRepo,
		generator:    generator,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s, services=%v",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера
	if _, err := uc.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Генерируем слоты
	result, err := uc.generator.Generate(ctx, req.ProviderID, req.Date, req.ServiceIDs)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrServiceNotFound):
			uc.logger.Warn("GetAvailableSlots: provider id=%d does not offer %v", req.ProviderID, req.ServiceIDs)
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		case errors.Is(err, availability.ErrInvalidDuration):
			uc.logger.Warn("GetAvailableSlots: %v", err)
			return nil, ErrInvalidDuration
		default:
			uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
	}

	uc.metrics.ObserveSlotsGenerated(len(result.Slots))

	if !result.Window.IsOpen {
		uc.logger.Info("GetAvailableSlots: provider=%d is closed on %s", req.ProviderID, result.Date.Format(domain.DateFormat))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for provider=%d, date=%s",
		len(result.Slots), req.ProviderID, result.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID:           req.ProviderID,
		Date:                 result.Date,
		TotalDurationMinutes: result.TotalDurationMinutes,
		Slots:                toSlots(result.Slots),
	}, nil
}

func toSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			Start:           s.Interval.Start,
			End:             s.Interval.End,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return result
}
