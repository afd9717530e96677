package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

type fakeService struct {
	bookingID, clientID int64
	err                 error
}

func (f *fakeService) Cancel(_ context.Context, bookingID int64, clientID int64) (*models.BookingResponse, error) {
	f.bookingID, f.clientID = bookingID, clientID
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: bookingID, ClientID: clientID, Status: "cancelled"}, nil
}

func serve(svc *fakeService, path, clientID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if clientID != "" {
		req.Header.Set(middleware.HeaderClientID, clientID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Cancelled(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/bookings/5/cancel", "42")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(5), svc.bookingID)
	assert.Equal(t, int64(42), svc.clientID)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body.Status)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, "BOOKING_NOT_FOUND"},
		{"foreign booking", bookings.ErrAccessDenied, http.StatusForbidden, "UNAUTHORIZED"},
		{"already started", bookings.ErrCannotCancel, http.StatusConflict, "NOT_CANCELLABLE"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "/api/v1/bookings/5/cancel", "42")
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestHandler_Unauthenticated(t *testing.T) {
	svc := &fakeService{}
	assert.Equal(t, http.StatusUnauthorized, serve(svc, "/api/v1/bookings/5/cancel", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/bookings/abc/cancel", "42").Code)
	assert.Zero(t, svc.bookingID)
}
