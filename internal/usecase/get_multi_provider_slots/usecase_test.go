package get_multi_provider_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

type mockMatcher struct{ mock.Mock }

func (m *mockMatcher) FindCompatible(ctx context.Context, serviceIDs []int64) ([]*domain.Provider, error) {
	args := m.Called(ctx, serviceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Provider), args.Error(1)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) Generate(ctx context.Context, providerID int64, date time.Time, serviceIDs []int64) (*availability.SlotsResult, error) {
	args := m.Called(ctx, providerID, date, serviceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.SlotsResult), args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) ObserveSlotsGenerated(count int) {
	m.Called(count)
}

var date = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func slotAt(hour, minute, duration int) domain.Slot {
	start := date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return domain.NewSlot(domain.TimeInterval{Start: start, End: start.Add(time.Duration(duration) * time.Minute)})
}

func TestUseCase_Execute_MergesAndSorts(t *testing.T) {
	matcher := &mockMatcher{}
	generator := &mockGenerator{}
	metrics := &mockMetrics{}
	uc := NewUseCase(matcher, generator, metrics, logger.Nop())
	services := []int64{10, 20}

	matcher.On("FindCompatible", mock.Anything, services).Return([]*domain.Provider{
		{ID: 3, Name: "Y"},
		{ID: 7, Name: "X"},
	}, nil)
	generator.On("Generate", mock.Anything, int64(3), date, services).Return(&availability.SlotsResult{
		Date: date, TotalDurationMinutes: 45,
		Slots: []domain.Slot{slotAt(9, 0, 45), slotAt(10, 0, 45)},
	}, nil)
	generator.On("Generate", mock.Anything, int64(7), date, services).Return(&availability.SlotsResult{
		Date: date, TotalDurationMinutes: 30,
		Slots: []domain.Slot{slotAt(9, 0, 30), slotAt(9, 30, 30)},
	}, nil)
	metrics.On("ObserveSlotsGenerated", 4).Return()

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceIDs: services})
	require.NoError(t, err)

	require.Len(t, resp.CompatibleProviders, 2)
	assert.Equal(t, 45, resp.CompatibleProviders[0].TotalDurationMinutes)
	assert.Equal(t, 30, resp.CompatibleProviders[1].TotalDurationMinutes)

	type entry struct {
		start    string
		provider int64
	}
	got := make([]entry, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		got = append(got, entry{s.StartTime.String(), s.ProviderID})
	}
	assert.Equal(t, []entry{{"09:00", 3}, {"09:00", 7}, {"09:30", 7}, {"10:00", 3}}, got)
	assert.Equal(t, "X", resp.Slots[1].ProviderName)
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_SkipsProviderWithZeroDuration(t *testing.T) {
	matcher := &mockMatcher{}
	generator := &mockGenerator{}
	metrics := &mockMetrics{}
	uc := NewUseCase(matcher, generator, metrics, logger.Nop())

	matcher.On("FindCompatible", mock.Anything, []int64{10}).Return([]*domain.Provider{{ID: 1}, {ID: 2}}, nil)
	generator.On("Generate", mock.Anything, int64(1), date, []int64{10}).Return(nil, availability.ErrInvalidDuration)
	generator.On("Generate", mock.Anything, int64(2), date, []int64{10}).Return(&availability.SlotsResult{
		Date: date, TotalDurationMinutes: 30, Slots: []domain.Slot{slotAt(9, 0, 30)},
	}, nil)
	metrics.On("ObserveSlotsGenerated", 1).Return()

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceIDs: []int64{10}})
	require.NoError(t, err)
	require.Len(t, resp.CompatibleProviders, 1)
	assert.Equal(t, int64(2), resp.CompatibleProviders[0].ID)
}

func TestUseCase_Execute_NoCompatibleProviders(t *testing.T) {
	matcher := &mockMatcher{}
	metrics := &mockMetrics{}
	uc := NewUseCase(matcher, &mockGenerator{}, metrics, logger.Nop())

	matcher.On("FindCompatible", mock.Anything, []int64{10, 99}).Return([]*domain.Provider{}, nil)
	metrics.On("ObserveSlotsGenerated", 0).Return()

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceIDs: []int64{10, 99}})
	require.NoError(t, err)
	assert.Empty(t, resp.CompatibleProviders)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	matcher := &mockMatcher{}
	uc := NewUseCase(matcher, &mockGenerator{}, &mockMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)

	matcher.On("FindCompatible", mock.Anything, []int64{10}).Return(nil, availability.ErrInternal)
	_, err = uc.Execute(context.Background(), &Request{Date: date, ServiceIDs: []int64{10}})
	assert.ErrorIs(t, err, ErrInternal)
}
