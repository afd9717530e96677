package models

import (
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// ProviderResponse мастер
type ProviderResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProviderListResponse список мастеров
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ServiceListResponse каталог услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// OfferedServiceResponse услуга мастера с его длительностью и ценой
type OfferedServiceResponse struct {
	ServiceID       int64    `json:"serviceId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// WorkingDayResponse рабочие часы мастера на день недели
type WorkingDayResponse struct {
	DayOfWeek            int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	SlotIncrementMinutes int    `json:"slotIncrementMinutes"`
	IsAvailable          bool   `json:"isAvailable"`
}

// ProviderServicesResponse услуги и недельное расписание мастера
type ProviderServicesResponse struct {
	Provider     ProviderResponse         `json:"provider"`
	Services     []OfferedServiceResponse `json:"services"`
	WorkingHours []WorkingDayResponse     `json:"workingHours"`
}

// FromDomainProviders конвертирует список мастеров в DTO
func FromDomainProviders(providers []*domain.Provider) *ProviderListResponse {
	result := &ProviderListResponse{Providers: make([]ProviderResponse, 0, len(providers))}
	for _, p := range providers {
		result.Providers = append(result.Providers, ProviderResponse{ID: p.ID, Name: p.Name})
	}
	return result
}

// FromDomainServices конвертирует каталог услуг в DTO
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		result.Services = append(result.Services, ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return result
}

// FromDomainProviderServices конвертирует услуги и расписание мастера в DTO
func FromDomainProviderServices(
	p *domain.Provider,
	offered []domain.OfferedService,
	hours []*domain.WorkingHours,
) *ProviderServicesResponse {
	result := &ProviderServicesResponse{
		Provider:     ProviderResponse{ID: p.ID, Name: p.Name},
		Services:     make([]OfferedServiceResponse, 0, len(offered)),
		WorkingHours: make([]WorkingDayResponse, 0, len(hours)),
	}
	for _, s := range offered {
		result.Services = append(result.Services, OfferedServiceResponse{
			ServiceID:       s.ServiceID,
			Name:            s.ServiceName,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	for _, h := range hours {
		result.WorkingHours = append(result.WorkingHours, WorkingDayResponse{
			DayOfWeek:            int(h.DayOfWeek),
			StartTime:            h.StartTime.String(),
			EndTime:              h.EndTime.String(),
			SlotIncrementMinutes: h.SlotIncrementMinutes,
			IsAvailable:          h.IsAvailable,
		})
	}
	return result
}
