package list_provider_services

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
)

const (
	msgInvalidProviderID = "некорректный ID мастера"
	msgProviderNotFound  = "мастер не найден"
)

type CatalogService interface {
	ListProviderServices(ctx context.Context, providerID int64) (*models.ProviderServicesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.ParseID(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("GET /providers/{id}/services - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	result, err := h.service.ListProviderServices(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, catalog.ErrProviderNotFound) {
			h.logger.Warn("GET /providers/{id}/services - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, domain.CodeProviderNotFound, msgProviderNotFound)
			return
		}
		h.logger.Error("GET /providers/{id}/services - Failed: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/services - provider_id=%d, services=%d", providerID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
