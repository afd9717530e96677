package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

var (
	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrServiceNotFound возвращается, когда мастер не оказывает одну из услуг
	ErrServiceNotFound = errors.New("create_booking: service not offered by provider")

	// ErrInvalidDuration возвращается, когда суммарная длительность услуг не положительна
	ErrInvalidDuration = errors.New("create_booking: total duration must be positive")

	// ErrInvalidRange возвращается при некорректном интервале бронирования
	ErrInvalidRange = errors.New("create_booking: invalid time range")

	// ErrOutsideWorkingHours возвращается, когда интервал вне рабочего окна мастера
	ErrOutsideWorkingHours = errors.New("create_booking: outside working hours")

	// ErrPastTime возвращается, когда начало интервала в прошлом
	ErrPastTime = errors.New("create_booking: start time is in the past")

	// ErrBookingConflict возвращается, когда интервал пересекается с бронированием
	ErrBookingConflict = errors.New("create_booking: conflicts with an existing booking")

	// ErrUnavailabilityConflict возвращается, когда мастер недоступен в этот интервал
	ErrUnavailabilityConflict = errors.New("create_booking: provider is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// rejectionErrors отказ валидатора -> ошибка usecase
var rejectionErrors = map[domain.RejectionReason]error{
	domain.RejectionOutsideWorkingHours:    ErrOutsideWorkingHours,
	domain.RejectionPastTime:               ErrPastTime,
	domain.RejectionBookingConflict:        ErrBookingConflict,
	domain.RejectionUnavailabilityConflict: ErrUnavailabilityConflict,
}

// ReasonOf возвращает код отказа для ошибки usecase, если ошибка является отказом
func ReasonOf(err error) (domain.RejectionReason, bool) {
	for reason, target := range rejectionErrors {
		if errors.Is(err, target) {
			return reason, true
		}
	}
	return "", false
}
