package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var now = time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)

func booking(id, clientID int64, startIn time.Duration, status domain.BookingStatus) *domain.Booking {
	start := now.Add(startIn)
	return &domain.Booking{
		ID:         id,
		ProviderID: 1,
		ClientID:   clientID,
		Interval:   domain.TimeInterval{Start: start, End: start.Add(30 * time.Minute)},
		ServiceIDs: []int64{10},
		Status:     status,
	}
}

func newService(repo *mockBookingRepo) *Service {
	return NewService(repo, inlineTx{}, fixedClock{now: now}, logger.Nop())
}

func TestService_Cancel(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(booking(1, 42, 2*time.Hour, domain.StatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.StatusCancelled).Return(nil)

	resp, err := svc.Cancel(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	repo.AssertExpectations(t)
}

func TestService_Cancel_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		client  int64
		want    error
	}{
		{"other client", booking(1, 7, 2*time.Hour, domain.StatusConfirmed), 42, ErrAccessDenied},
		{"already started", booking(1, 42, -10*time.Minute, domain.StatusInProgress), 42, ErrCannotCancel},
		{"already cancelled", booking(1, 42, 2*time.Hour, domain.StatusCancelled), 42, ErrCannotCancel},
		{"completed", booking(1, 42, -3*time.Hour, domain.StatusCompleted), 42, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			svc := newService(repo)
			repo.On("GetByID", mock.Anything, int64(1)).Return(tt.booking, nil)

			_, err := svc.Cancel(context.Background(), 1, tt.client)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), 5, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(booking(1, 42, time.Hour, domain.StatusConfirmed), nil)

	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, "13:00", resp.StartTime)
	assert.Equal(t, "13:30", resp.EndTime)
	assert.Equal(t, "2026-10-20", resp.Date)

	_, err = svc.GetByID(context.Background(), 1, 43)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetClientBookings(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newService(repo)

	repo.On("GetWithFilter", mock.Anything, domain.BookingsFilter{ClientID: ptr.Ptr(int64(42))}).Return([]*domain.Booking{
		booking(2, 42, 24*time.Hour, domain.StatusConfirmed),
		booking(1, 42, -24*time.Hour, domain.StatusCompleted),
	}, nil)

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: 42})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: 42, UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestService_GetClientBookings_InvalidStatus(t *testing.T) {
	svc := newService(&mockBookingRepo{})

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 42,
		Status:   ptr.Ptr("cancelled_by_user"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
