package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

var (
	// ErrInvalidDuration возвращается, когда суммарная длительность услуг не положительна
	ErrInvalidDuration = errors.New("availability: total service duration must be positive")

	// ErrServiceNotFound возвращается, когда мастер не оказывает запрошенную услугу
	ErrServiceNotFound = errors.New("availability: service not offered by provider")

	// ErrInvalidIncrement возвращается при некорректном шаге сетки слотов
	ErrInvalidIncrement = errors.New("availability: invalid slot increment")

	// ErrInternal возвращается при ошибках источников данных
	ErrInternal = errors.New("availability: internal error")
)

// Rejection structured reason why a candidate interval cannot be booked
type Rejection struct {
	Reason   domain.RejectionReason
	Conflict *domain.TimeInterval // Пересекающийся интервал, если причина - конфликт
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("availability: rejected: %s", r.Reason)
}
