package get_available_slots

import "errors"

var (
	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = errors.New("get_available_slots: provider not found")

	// ErrServiceNotFound возвращается, когда мастер не оказывает одну из услуг
	ErrServiceNotFound = errors.New("get_available_slots: service not offered by provider")

	// ErrInvalidDuration возвращается, когда суммарная длительность услуг не положительна
	ErrInvalidDuration = errors.New("get_available_slots: total duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
