package get_multi_provider_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	getMultiProviderSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_multi_provider_slots"
)

const (
	msgInvalidServiceIDs = "serviceIds обязателен: список положительных ID через запятую"
	msgInvalidDate       = "дата обязательна в формате YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMultiProviderSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetMultiProviderSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), serviceIds (required, "1,2")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDs, err := handlers.ParseIDList(r.URL.Query().Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMultiProviderSlots.Request{
		Date:       date,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		if errors.Is(err, getMultiProviderSlots.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /availability - Failed to get slots: service_ids=%v, error=%v", serviceIDs, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Slots retrieved: date=%s, providers=%d, slots_count=%d",
		dateStr, len(result.CompatibleProviders), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
