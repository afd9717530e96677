package check_service_compatibility

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	checkCompatibility "github.com/m04kA/SMC-BarberBookingService/internal/usecase/check_service_compatibility"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса: serviceIds должен содержать от 1 до 20 положительных ID"
)

type Handler struct {
	useCase CheckCompatibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCompatibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/compatibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/compatibility - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkCompatibility.Request{ServiceIDs: req.ServiceIDs})
	if err != nil {
		if errors.Is(err, checkCompatibility.ErrInvalidInput) {
			h.logger.Warn("POST /services/compatibility - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /services/compatibility - Failed: service_ids=%v, error=%v", req.ServiceIDs, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services/compatibility - service_ids=%v, compatible=%t, providers=%d",
		req.ServiceIDs, result.Compatible, result.CompatibleProviderCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
