package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
	"github.com/m04kA/SMC-BarberBookingService/pkg/pgerr"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	durations    DurationCalculator
	validator    Validator
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	durations DurationCalculator,
	validator Validator,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		durations:    durations,
		validator:    validator,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка и вставка выполняются атомарно: сериализуемая транзакция,
// advisory-блокировка на (мастер, дата) и повторная валидация внутри транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, provider=%d, services=%v, start=%s",
		req.ClientID, req.ProviderID, req.ServiceIDs, req.Start)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	serviceIDs := uniqueServiceIDs(req.ServiceIDs)
	loc := uc.timeProvider.Now().Location()
	start := req.Start.In(loc)

	// 2. Получаем мастера
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %w", ErrInternal, err)
	}

	// 3. Суммарная длительность услуг у этого мастера
	duration, err := uc.durations.TotalDuration(ctx, req.ProviderID, serviceIDs)
	if err != nil {
		if errors.Is(err, availability.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d does not offer services %v", req.ProviderID, serviceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to calculate duration: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate duration: %w", ErrInternal, err)
	}

	// 4. Интервал бронирования
	candidate, err := availability.Candidate(start, duration)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			uc.logger.Warn("CreateBooking: non-positive duration %d for services %v", duration, serviceIDs)
			return nil, ErrInvalidDuration
		}
		uc.logger.Warn("CreateBooking: invalid range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	var result *domain.Booking

	// 5. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем (мастер, дата) до конца транзакции
		if err := uc.bookingRepo.LockProviderDay(txCtx, req.ProviderID, domain.StartOfDay(candidate.Start)); err != nil {
			uc.logger.Error("CreateBooking: failed to lock provider=%d day: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to lock provider day: %w", ErrInternal, err)
		}

		// 5.2. Повторная проверка внутри транзакции
		rejection, err := uc.validator.Validate(txCtx, req.ProviderID, candidate)
		if err != nil {
			uc.logger.Error("CreateBooking: validation error: %v", err)
			return fmt.Errorf("%w: failed to validate booking: %w", ErrInternal, err)
		}
		if rejection != nil {
			uc.logger.Warn("CreateBooking: rejected provider=%d start=%s: %s",
				req.ProviderID, candidate.Start, rejection.Reason)
			return rejectionError(rejection)
		}

		// 5.3. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ProviderID:   req.ProviderID,
			ClientID:     req.ClientID,
			Interval:     candidate,
			ServiceIDs:   serviceIDs,
			Status:       domain.StatusConfirmed,
			Notes:        req.Notes,
			ProviderName: provider.Name,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingOverlap) {
				uc.logger.Warn("CreateBooking: overlap detected on insert for provider=%d", req.ProviderID)
				return fmt.Errorf("%w: %v", ErrBookingConflict, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Гонка с параллельной транзакцией - это конфликт бронирований
		if errors.Is(err, txmanager.ErrSerializationFailure) || pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization failure for provider=%d: %v", req.ProviderID, err)
			err = fmt.Errorf("%w: concurrent booking", ErrBookingConflict)
		}
		if reason, ok := ReasonOf(err); ok {
			uc.metrics.RecordBookingRejection(reason.String())
		}
		return nil, err
	}

	uc.metrics.RecordBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProviderID:      result.ProviderID,
		ProviderName:    result.ProviderName,
		ServiceIDs:      result.ServiceIDs,
		Date:            domain.StartOfDay(result.Interval.Start),
		StartTime:       types.NewTimeString(result.Interval.Start),
		EndTime:         types.NewEndTimeString(result.Interval.Start, result.Interval.End),
		Start:           result.Interval.Start,
		End:             result.Interval.End,
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// rejectionError конвертирует отказ валидатора в ошибку usecase
func rejectionError(r *availability.Rejection) error {
	target, ok := rejectionErrors[r.Reason]
	if !ok {
		return fmt.Errorf("%w: unknown rejection %s", ErrInternal, r.Reason)
	}
	if r.Conflict != nil {
		return fmt.Errorf("%w: %s-%s", target,
			types.NewTimeString(r.Conflict.Start), types.NewEndTimeString(r.Conflict.Start, r.Conflict.End))
	}
	return target
}
