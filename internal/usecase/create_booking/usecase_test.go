package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/availability"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if fn, ok := args.Get(0).(func(*domain.Booking) *domain.Booking); ok {
		return fn(b), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) LockProviderDay(ctx context.Context, providerID int64, date time.Time) error {
	return m.Called(ctx, providerID, date).Error(0)
}

type mockProviderRepo struct{ mock.Mock }

func (m *mockProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type mockDurations struct{ mock.Mock }

func (m *mockDurations) TotalDuration(ctx context.Context, providerID int64, serviceIDs []int64) (int, error) {
	args := m.Called(ctx, providerID, serviceIDs)
	return args.Int(0), args.Error(1)
}

type mockValidator struct{ mock.Mock }

func (m *mockValidator) Validate(ctx context.Context, providerID int64, candidate domain.TimeInterval) (*availability.Rejection, error) {
	args := m.Called(ctx, providerID, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.Rejection), args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) RecordBookingCreated() {
	m.Called()
}

func (m *mockMetrics) RecordBookingRejection(reason string) {
	m.Called(reason)
}

// inlineTx выполняет fn без БД, возвращая ошибку как есть
type inlineTx struct {
	err   error
	calls int
}

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixture struct {
	bookings  *mockBookingRepo
	providers *mockProviderRepo
	durations *mockDurations
	validator *mockValidator
	metrics   *mockMetrics
	tx        *inlineTx
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &mockBookingRepo{},
		providers: &mockProviderRepo{},
		durations: &mockDurations{},
		validator: &mockValidator{},
		metrics:   &mockMetrics{},
		tx:        &inlineTx{},
	}
	f.uc = NewUseCase(f.bookings, f.providers, f.durations, f.validator, f.tx, f.metrics,
		fixedClock{now: time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)}, logger.Nop())
	return f
}

func start() time.Time {
	return time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
}

func request() *Request {
	return &Request{
		ClientID:   42,
		ProviderID: 1,
		ServiceIDs: []int64{10, 20, 10},
		Start:      start(),
		Notes:      ptr.Ptr("skin fade"),
	}
}

func candidate() domain.TimeInterval {
	return domain.TimeInterval{Start: start(), End: start().Add(45 * time.Minute)}
}

func (f *fixture) expectProviderAndDuration() {
	f.providers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Provider{ID: 1, Name: "Alex"}, nil)
	f.durations.On("TotalDuration", mock.Anything, int64(1), []int64{10, 20}).Return(45, nil)
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()
	f.expectProviderAndDuration()
	f.bookings.On("LockProviderDay", mock.Anything, int64(1), time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)).Return(nil)
	f.validator.On("Validate", mock.Anything, int64(1), candidate()).Return(nil, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ClientID == 42 && b.ProviderName == "Alex" && b.Status == domain.StatusConfirmed &&
			b.Interval.Start.Equal(candidate().Start) && b.Interval.End.Equal(candidate().End) && len(b.ServiceIDs) == 2
	})).Return(func(b *domain.Booking) *domain.Booking {
		b.ID = 100
		return b
	}, nil)
	f.metrics.On("RecordBookingCreated").Return()

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "10:45", resp.EndTime.String())
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, []int64{10, 20}, resp.ServiceIDs)
	assert.Equal(t, "confirmed", resp.Status)
	f.metrics.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		reason domain.RejectionReason
		want   error
	}{
		{"outside working hours", domain.RejectionOutsideWorkingHours, ErrOutsideWorkingHours},
		{"past time", domain.RejectionPastTime, ErrPastTime},
		{"booking conflict", domain.RejectionBookingConflict, ErrBookingConflict},
		{"unavailability", domain.RejectionUnavailabilityConflict, ErrUnavailabilityConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.expectProviderAndDuration()
			f.bookings.On("LockProviderDay", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			f.validator.On("Validate", mock.Anything, int64(1), candidate()).
				Return(&availability.Rejection{Reason: tt.reason}, nil)
			f.metrics.On("RecordBookingRejection", tt.reason.String()).Return()

			_, err := f.uc.Execute(context.Background(), request())
			assert.ErrorIs(t, err, tt.want)

			reason, ok := ReasonOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.reason, reason)
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.metrics.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_OverlapOnInsert(t *testing.T) {
	f := newFixture()
	f.expectProviderAndDuration()
	f.bookings.On("LockProviderDay", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.validator.On("Validate", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: provider=1", bookingRepo.ErrBookingOverlap))
	f.metrics.On("RecordBookingRejection", "BOOKING_CONFLICT").Return()

	_, err := f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestUseCase_Execute_SerializationFailure(t *testing.T) {
	f := newFixture()
	f.expectProviderAndDuration()
	f.tx.err = fmt.Errorf("%w: 3 attempts: %w", txmanager.ErrSerializationFailure, &pq.Error{Code: "40001"})
	f.metrics.On("RecordBookingRejection", "BOOKING_CONFLICT").Return()

	_, err := f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.False(t, errors.Is(err, ErrInternal))
}

func TestUseCase_Execute_ProviderNotFound(t *testing.T) {
	f := newFixture()
	f.providers.On("GetByID", mock.Anything, int64(1)).Return(nil, providerRepo.ErrProviderNotFound)

	_, err := f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrProviderNotFound)
	assert.Zero(t, f.tx.calls)
}

func TestUseCase_Execute_ServiceNotOffered(t *testing.T) {
	f := newFixture()
	f.providers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Provider{ID: 1, Name: "Alex"}, nil)
	f.durations.On("TotalDuration", mock.Anything, int64(1), mock.Anything).
		Return(0, fmt.Errorf("%w: provider=1 service=20", availability.ErrServiceNotFound))

	_, err := f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_ZeroDuration(t *testing.T) {
	f := newFixture()
	f.providers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Provider{ID: 1, Name: "Alex"}, nil)
	f.durations.On("TotalDuration", mock.Anything, int64(1), mock.Anything).Return(0, nil)

	_, err := f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Zero(t, f.tx.calls)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{"no client", func(r *Request) { r.ClientID = 0 }},
		{"no provider", func(r *Request) { r.ProviderID = -1 }},
		{"no services", func(r *Request) { r.ServiceIDs = nil }},
		{"bad service id", func(r *Request) { r.ServiceIDs = []int64{0} }},
		{"no start", func(r *Request) { r.Start = time.Time{} }},
		{"too many services", func(r *Request) {
			r.ServiceIDs = make([]int64, domain.MaxServicesPerBooking+1)
			for i := range r.ServiceIDs {
				r.ServiceIDs[i] = int64(i + 1)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := request()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			f.providers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}
