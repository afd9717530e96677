package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями клиента
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id int64, clientID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for client=%d", id, clientID)

	booking, err := s.getOwned(ctx, "GetByID", id, clientID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает бронирования клиента, сначала новые.
// Опционально фильтрует по статусу или только предстоящие.
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v, upcoming=%t",
		req.ClientID, req.Status, req.UpcomingOnly)

	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{ClientID: &req.ClientID}

	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	if req.UpcomingOnly {
		now := s.timeProvider.Now()
		upcoming := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.IsUpcoming(now) {
				upcoming = append(upcoming, b)
			}
		}
		bookings = upcoming
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование клиента.
// Отменить можно только своё предстоящее бронирование (pending, confirmed, in_progress и ещё не началось).
// После отмены интервал больше не блокирует время мастера.
func (s *Service) Cancel(ctx context.Context, bookingID int64, clientID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by client=%d", bookingID, clientID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Внутри транзакции строка блокируется
		booking, err := s.getOwned(txCtx, "Cancel", bookingID, clientID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled(s.timeProvider.Now()) {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s, start=%s",
				bookingID, booking.Status, booking.Interval.Start)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// getOwned получает бронирование и проверяет, что оно принадлежит клиенту
func (s *Service) getOwned(ctx context.Context, op string, id int64, clientID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.ClientID != clientID {
		s.logger.Warn("%s: access denied for client=%d to booking id=%d", op, clientID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
