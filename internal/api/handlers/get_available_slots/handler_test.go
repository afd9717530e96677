package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/providers/{providerId}/availability", NewHandler(uc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	start := time.Date(2026, 10, 20, 10, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		ProviderID:           7,
		Date:                 time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		TotalDurationMinutes: 30,
		Slots: []getAvailableSlots.Slot{{
			StartTime:       types.TimeString("10:30"),
			EndTime:         types.TimeString("11:00"),
			Start:           start,
			End:             start.Add(30 * time.Minute),
			DurationMinutes: 30,
		}},
	}}

	rec := serve(uc, "/api/v1/providers/7/availability?date=2026-10-20&serviceIds=1,2")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(7), uc.got.ProviderID)
	assert.Equal(t, []int64{1, 2}, uc.got.ServiceIDs)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-20", body.Date)
	assert.Equal(t, 30, body.TotalDurationMinutes)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "10:30", body.Slots[0].StartTime)
	assert.Equal(t, "11:00", body.Slots[0].EndTime)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
		code   string
	}{
		{"bad provider id", "/api/v1/providers/x/availability?date=2026-10-20&serviceIds=1", nil, http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing services", "/api/v1/providers/7/availability?date=2026-10-20", nil, http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing date", "/api/v1/providers/7/availability?serviceIds=1", nil, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad date", "/api/v1/providers/7/availability?date=20.10.2026&serviceIds=1", nil, http.StatusBadRequest, "INVALID_REQUEST"},
		{"provider not found", "/api/v1/providers/7/availability?date=2026-10-20&serviceIds=1",
			getAvailableSlots.ErrProviderNotFound, http.StatusNotFound, "PROVIDER_NOT_FOUND"},
		{"service not found", "/api/v1/providers/7/availability?date=2026-10-20&serviceIds=1",
			getAvailableSlots.ErrServiceNotFound, http.StatusNotFound, "SERVICE_NOT_FOUND"},
		{"invalid duration", "/api/v1/providers/7/availability?date=2026-10-20&serviceIds=1",
			getAvailableSlots.ErrInvalidDuration, http.StatusUnprocessableEntity, "INVALID_DURATION"},
		{"internal", "/api/v1/providers/7/availability?date=2026-10-20&serviceIds=1",
			fmt.Errorf("%w: db down", getAvailableSlots.ErrInternal), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
