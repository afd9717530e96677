package domain

import (
	"errors"
	"time"
)

// ErrInvalidStatus возвращается при неизвестном статусе бронирования
var ErrInvalidStatus = errors.New("domain: invalid booking status")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// AllStatuses closed set of booking statuses
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// BlocksTime returns true if a booking in this status occupies the provider's time.
// Cancelled and no-show bookings never block, both when browsing slots and when committing.
func (s BookingStatus) BlocksTime() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted:
		return true
	case StatusCancelled, StatusNoShow:
		return false
	default:
		return false
	}
}

// Booking represents a client booking with a provider
type Booking struct {
	ID         int64
	ProviderID int64
	ClientID   int64
	Interval   TimeInterval
	ServiceIDs []int64
	Status     BookingStatus
	Notes      *string

	// Denormalized data for history
	ProviderName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the booked duration
func (b *Booking) DurationMinutes() int {
	return b.Interval.DurationMinutes()
}

// IsActive returns true if the booking still blocks the provider's time
func (b *Booking) IsActive() bool {
	return b.Status.BlocksTime()
}

// IsUpcoming returns true if the booking has not started yet and is still pending, confirmed or in progress
func (b *Booking) IsUpcoming(now time.Time) bool {
	switch b.Status {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return b.Interval.Start.After(now)
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking can be cancelled at the given instant
func (b *Booking) CanBeCancelled(now time.Time) bool {
	return b.IsUpcoming(now)
}

// IsCancelled returns true if the booking has been cancelled or the client did not show up
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled || b.Status == StatusNoShow
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ProviderID      *int64          // Фильтр по мастеру (опционально)
	ClientID        *int64          // Фильтр по клиенту (опционально)
	Period          *TimeInterval   // Бронирования, пересекающие период (опционально)
	Status          *BookingStatus  // Фильтр по статусу (опционально)
	ExcludeStatuses []BookingStatus // Исключаемые статусы (например, отменённые)
}
