package availability

import (
	"context"
	"fmt"
)

// DurationCalculator считает суммарную длительность набора услуг у конкретного мастера.
// Длительность услуги зависит от мастера.
type DurationCalculator struct {
	providers ProviderRepository
	strict    bool
}

// NewDurationCalculator создает калькулятор длительности.
// strict = true: услуга, которую мастер не оказывает, приводит к ErrServiceNotFound.
// strict = false: такая услуга дает 0 минут.
func NewDurationCalculator(providers ProviderRepository, strict bool) *DurationCalculator {
	return &DurationCalculator{
		providers: providers,
		strict:    strict,
	}
}

// TotalDuration возвращает сумму длительностей услуг в минутах.
// Повторяющиеся ID учитываются один раз. Пустой набор дает 0.
func (c *DurationCalculator) TotalDuration(ctx context.Context, providerID int64, serviceIDs []int64) (int, error) {
	if len(serviceIDs) == 0 {
		return 0, nil
	}

	offered, err := c.providers.GetOfferedServices(ctx, providerID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get offered services of provider %d: %w", ErrInternal, providerID, err)
	}

	total := 0
	for _, id := range uniqueIDs(serviceIDs) {
		service, ok := offered[id]
		if !ok {
			if c.strict {
				return 0, fmt.Errorf("%w: provider=%d service=%d", ErrServiceNotFound, providerID, id)
			}
			continue
		}
		total += service.DurationMinutes
	}

	return total, nil
}

// uniqueIDs убирает дубликаты, сохраняя порядок
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
