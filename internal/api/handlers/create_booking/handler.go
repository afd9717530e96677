package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStart       = "некорректные дата или время начала, ожидается YYYY-MM-DD и HH:MM"
	msgMissingClientID    = "отсутствует ID клиента"
	msgProviderNotFound   = "мастер не найден"
	msgServiceNotFound    = "мастер не оказывает одну из выбранных услуг"
	msgInvalidDuration    = "суммарная длительность услуг должна быть положительной"
	msgInvalidRange       = "некорректный интервал бронирования"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing client ID")
		handlers.RespondError(w, http.StatusUnauthorized, domain.CodeUnauthorized, msgMissingClientID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if reason, ok := createBooking.ReasonOf(err); ok {
			h.logger.Warn("POST /bookings - Rejected %s: client_id=%d, provider_id=%d, error=%v",
				reason, clientID, req.ProviderID, err)
			handlers.RespondRejection(w, reason)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrProviderNotFound):
			h.logger.Warn("POST /bookings - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, domain.CodeProviderNotFound, msgProviderNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not offered: provider_id=%d, service_ids=%v",
				req.ProviderID, req.ServiceIDs)
			handlers.RespondNotFound(w, domain.CodeServiceNotFound, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: provider_id=%d, service_ids=%v",
				req.ProviderID, req.ServiceIDs)
			handlers.RespondError(w, http.StatusUnprocessableEntity, domain.CodeInvalidDuration, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, domain.CodeInvalidRange, msgInvalidRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, provider_id=%d, error=%v",
				clientID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, client_id=%d, provider_id=%d",
		result.ID, clientID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
