package get_multi_provider_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	getMultiProviderSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_multi_provider_slots"
)

// MultiProviderSlotsResponse HTTP response model
type MultiProviderSlotsResponse struct {
	Date                string               `json:"date"`
	CompatibleProviders []CompatibleProvider `json:"compatibleProviders"`
	Slots               []ProviderSlot       `json:"slots"`
}

// CompatibleProvider мастер, оказывающий весь набор услуг
type CompatibleProvider struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	TotalDurationMinutes int    `json:"totalDurationMinutes"`
}

// ProviderSlot слот конкретного мастера
type ProviderSlot struct {
	ProviderID      int64     `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	DurationMinutes int       `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMultiProviderSlots.Response) *MultiProviderSlotsResponse {
	providers := make([]CompatibleProvider, len(resp.CompatibleProviders))
	for i, p := range resp.CompatibleProviders {
		providers[i] = CompatibleProvider{
			ID:                   p.ID,
			Name:                 p.Name,
			TotalDurationMinutes: p.TotalDurationMinutes,
		}
	}

	slots := make([]ProviderSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = ProviderSlot{
			ProviderID:      s.ProviderID,
			ProviderName:    s.ProviderName,
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			StartAt:         s.Start,
			EndAt:           s.End,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &MultiProviderSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		CompatibleProviders: providers,
		Slots:               slots,
	}
}
