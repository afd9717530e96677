package get_client_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings/models"
)

const (
	msgMissingClientID = "отсутствует ID клиента"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgInvalidUpcoming = "параметр upcoming должен быть true или false"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status (optional), upcoming (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing client ID")
		handlers.RespondError(w, http.StatusUnauthorized, domain.CodeUnauthorized, msgMissingClientID)
		return
	}

	serviceReq := &models.GetClientBookingsRequest{ClientID: clientID}

	if status := r.URL.Query().Get("status"); status != "" {
		serviceReq.Status = &status
	}

	if upcoming := r.URL.Query().Get("upcoming"); upcoming != "" {
		value, err := strconv.ParseBool(upcoming)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid upcoming flag %q", upcoming)
			handlers.RespondBadRequest(w, msgInvalidUpcoming)
			return
		}
		serviceReq.UpcomingOnly = value
	}

	result, err := h.service.GetClientBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to get bookings: client_id=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: client_id=%d, count=%d", clientID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
