package check_service_compatibility

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// UseCase use case проверки, может ли один мастер оказать весь набор услуг
type UseCase struct {
	matcher CompatibilityMatcher
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(matcher CompatibilityMatcher, logger Logger) *UseCase {
	return &UseCase{
		matcher: matcher,
		logger:  logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckServiceCompatibility: services=%v", req.ServiceIDs)

	if len(req.ServiceIDs) == 0 {
		uc.logger.Warn("CheckServiceCompatibility: empty service set")
		return nil, fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return nil, fmt.Errorf("%w: at most %d services", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	providers, err := uc.matcher.FindCompatible(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CheckServiceCompatibility: failed to find compatible providers: %v", err)
		return nil, fmt.Errorf("%w: failed to find compatible providers: %v", ErrInternal, err)
	}

	resp := &Response{
		Compatible:              len(providers) > 0,
		CompatibleProviderCount: len(providers),
		CompatibleProviders:     make([]Provider, 0, len(providers)),
		IncompatibleServiceIDs:  []int64{},
	}
	for _, p := range providers {
		resp.CompatibleProviders = append(resp.CompatibleProviders, Provider{ID: p.ID, Name: p.Name})
	}

	if !resp.Compatible {
		ids, err := uc.matcher.IncompatibleServices(ctx, req.ServiceIDs)
		if err != nil {
			uc.logger.Error("CheckServiceCompatibility: failed to find incompatible services: %v", err)
			return nil, fmt.Errorf("%w: failed to find incompatible services: %v", ErrInternal, err)
		}
		resp.IncompatibleServiceIDs = ids
	}

	uc.logger.Info("CheckServiceCompatibility: compatible=%t, providers=%d", resp.Compatible, resp.CompatibleProviderCount)
	return resp, nil
}
