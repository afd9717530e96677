package catalog

import (
	"context"
	"errors"
	"fmt"

	providerRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
)

// Service сервис каталога мастеров и услуг
type Service struct {
	providerRepo ProviderRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(providerRepo ProviderRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListProviders возвращает всех мастеров
func (s *Service) ListProviders(ctx context.Context) (*models.ProviderListResponse, error) {
	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProviders: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProviders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProviders: fetched %d providers", len(providers))
	return models.FromDomainProviders(providers), nil
}

// ListServices возвращает каталог услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.providerRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServices(services), nil
}

// ListProviderServices возвращает услуги мастера с его длительностями и недельное расписание
func (s *Service) ListProviderServices(ctx context.Context, providerID int64) (*models.ProviderServicesResponse, error) {
	s.logger.Info("ListProviderServices: provider=%d", providerID)

	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("ListProviderServices: provider id=%d not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("ListProviderServices: failed to get provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListProviderServices - repository error: %v", ErrInternal, err)
	}

	offered, err := s.providerRepo.ListOfferedServices(ctx, providerID)
	if err != nil {
		s.logger.Error("ListProviderServices: failed to get services of provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListProviderServices - repository error: %v", ErrInternal, err)
	}

	hours, err := s.scheduleRepo.ListWorkingHours(ctx, providerID)
	if err != nil {
		s.logger.Error("ListProviderServices: failed to get working hours of provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListProviderServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProviderServices(provider, offered, hours), nil
}
