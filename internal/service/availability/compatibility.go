package availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// CompatibilityMatcher ищет мастеров, оказывающих весь набор услуг
type CompatibilityMatcher struct {
	providers ProviderRepository
}

// NewCompatibilityMatcher создает матчер совместимости
func NewCompatibilityMatcher(providers ProviderRepository) *CompatibilityMatcher {
	return &CompatibilityMatcher{providers: providers}
}

// FindCompatible возвращает мастеров, у которых набор услуг включает все запрошенные.
// Пустой запрос дает пустой результат. Мастера упорядочены по ID.
func (m *CompatibilityMatcher) FindCompatible(ctx context.Context, serviceIDs []int64) ([]*domain.Provider, error) {
	ids, err := m.compatibleIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Provider{}, nil
	}

	providers, err := m.providers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get providers: %w", ErrInternal, err)
	}

	sort.Slice(providers, func(i, j int) bool { return providers[i].ID < providers[j].ID })
	return providers, nil
}

// IncompatibleServices возвращает услуги, из-за которых набор несовместим:
// без такой услуги оставшийся набор оказывает хотя бы один мастер.
// Если набор совместим целиком, возвращается пустой список.
func (m *CompatibilityMatcher) IncompatibleServices(ctx context.Context, serviceIDs []int64) ([]int64, error) {
	requested := uniqueIDs(serviceIDs)
	if len(requested) == 0 {
		return []int64{}, nil
	}

	all, err := m.compatibleIDs(ctx, requested)
	if err != nil {
		return nil, err
	}
	if len(all) > 0 {
		return []int64{}, nil
	}

	incompatible := make([]int64, 0)
	for i, serviceID := range requested {
		others := make([]int64, 0, len(requested)-1)
		others = append(others, requested[:i]...)
		others = append(others, requested[i+1:]...)
		if len(others) == 0 {
			continue
		}

		ids, err := m.compatibleIDs(ctx, others)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			incompatible = append(incompatible, serviceID)
		}
	}

	return incompatible, nil
}

// compatibleIDs сначала отбирает мастеров по количеству оказываемых запрошенных услуг,
// затем подтверждает пересечением множеств
func (m *CompatibilityMatcher) compatibleIDs(ctx context.Context, serviceIDs []int64) ([]int64, error) {
	requested := uniqueIDs(serviceIDs)
	if len(requested) == 0 {
		return []int64{}, nil
	}

	offerings, err := m.providers.GetOfferings(ctx, requested)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get offerings: %w", ErrInternal, err)
	}

	result := make([]int64, 0, len(offerings))
	for providerID, offered := range offerings {
		offeredSet := make(map[int64]struct{}, len(offered))
		for _, id := range offered {
			offeredSet[id] = struct{}{}
		}
		if len(offeredSet) < len(requested) {
			continue
		}
		if isSubset(requested, offeredSet) {
			result = append(result, providerID)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}

func isSubset(requested []int64, offered map[int64]struct{}) bool {
	for _, id := range requested {
		if _, ok := offered[id]; !ok {
			return false
		}
	}
	return true
}
