package check_service_compatibility

import (
	checkCompatibility "github.com/m04kA/SMC-BarberBookingService/internal/usecase/check_service_compatibility"
)

// CompatibilityRequest HTTP request model
type CompatibilityRequest struct {
	ServiceIDs []int64 `json:"serviceIds" validate:"required,min=1,max=20,dive,gt=0"`
}

// CompatibilityResponse HTTP response model
type CompatibilityResponse struct {
	Compatible              bool                 `json:"compatible"`
	CompatibleProviderCount int                  `json:"compatibleProviderCount"`
	CompatibleProviders     []CompatibleProvider `json:"compatibleProviders"`
	IncompatibleServiceIDs  []int64              `json:"incompatibleServiceIds"`
}

// CompatibleProvider мастер, оказывающий весь набор услуг
type CompatibleProvider struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkCompatibility.Response) *CompatibilityResponse {
	providers := make([]CompatibleProvider, len(resp.CompatibleProviders))
	for i, p := range resp.CompatibleProviders {
		providers[i] = CompatibleProvider{ID: p.ID, Name: p.Name}
	}

	incompatible := resp.IncompatibleServiceIDs
	if incompatible == nil {
		incompatible = []int64{}
	}

	return &CompatibilityResponse{
		Compatible:              resp.Compatible,
		CompatibleProviderCount: resp.CompatibleProviderCount,
		CompatibleProviders:     providers,
		IncompatibleServiceIDs:  incompatible,
	}
}
