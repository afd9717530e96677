package check_service_compatibility

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkCompatibility "github.com/m04kA/SMC-BarberBookingService/internal/usecase/check_service_compatibility"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

type fakeUseCase struct {
	calls int
	resp  *checkCompatibility.Response
}

func (f *fakeUseCase) Execute(_ context.Context, _ *checkCompatibility.Request) (*checkCompatibility.Response, error) {
	f.calls++
	return f.resp, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/services/compatibility", strings.NewReader(body)))
	return rec
}

func TestHandler_Incompatible(t *testing.T) {
	uc := &fakeUseCase{resp: &checkCompatibility.Response{
		Compatible:             false,
		CompatibleProviders:    []checkCompatibility.Provider{},
		IncompatibleServiceIDs: []int64{3},
	}}

	rec := post(NewHandler(uc, logger.Nop()), `{"serviceIds":[1,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body CompatibilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Compatible)
	assert.Empty(t, body.CompatibleProviders)
	assert.Equal(t, []int64{3}, body.IncompatibleServiceIDs)
}

func TestHandler_Validation(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	for _, body := range []string{`{}`, `{"serviceIds":[]}`, `{"serviceIds":[0]}`, `not json`} {
		rec := post(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Zero(t, uc.calls)
}
