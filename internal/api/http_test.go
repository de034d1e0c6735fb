package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunsketh/energy/internal/config"
	"github.com/arunsketh/energy/internal/storage"
	"github.com/arunsketh/energy/internal/tariffs"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	svc := tariffs.NewServiceWithStorage(tariffs.Config{}, storage.NewMemory())
	RegisterComparisonHandler(mux, svc)
	RegisterTariffHandlers(mux, svc)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestComparisonEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/api/v1/comparison", ComparisonRequest{
		Profile: tariffs.ConsumptionProfile{DayUnitsMonth: 392, NightUnitsMonth: 49},
		UserTariff: tariffs.Tariff{
			DayRatePence:        22.21,
			NightRatePence:      15.80,
			StandingChargePence: 57.74,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var cmp tariffs.Comparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmp))
	require.Len(t, cmp.Results, 1+len(tariffs.Builtin()))
	assert.Equal(t, tariffs.UserSupplierLabel, cmp.Results[0].Supplier)
	assert.InDelta(t, 1415.99, cmp.YourYearlyCostPounds, 0.01)
	assert.Equal(t, cmp.Results[0].YearlyCostPounds, cmp.YourYearlyCostPounds)
}

func TestComparisonEndpoint_MethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/comparison", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestComparisonEndpoint_BadBody(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCustomTariffEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/api/v1/tariffs/custom", tariffs.Tariff{
		Supplier:            "Bulb",
		DayRatePence:        19.5,
		NightRatePence:      12.1,
		StandingChargePence: 45,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The new tariff joins subsequent comparisons, at the end.
	rec = postJSON(t, mux, "/api/v1/comparison", ComparisonRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	var cmp tariffs.Comparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmp))
	require.Len(t, cmp.Results, 2+len(tariffs.Builtin()))
	assert.Equal(t, "Bulb", cmp.Results[len(cmp.Results)-1].Supplier)
}

func TestAddCustomTariffEndpoint_BlankSupplier(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/api/v1/tariffs/custom", tariffs.Tariff{Supplier: "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["warning"], "supplier name")

	// State unchanged.
	rec = postJSON(t, mux, "/api/v1/comparison", ComparisonRequest{})
	var cmp tariffs.Comparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmp))
	assert.Len(t, cmp.Results, 1+len(tariffs.Builtin()))
}

func TestListTariffsEndpoint(t *testing.T) {
	mux := newTestMux(t)
	postJSON(t, mux, "/api/v1/tariffs/custom", tariffs.Tariff{Supplier: "Bulb"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tariffs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tariffs []tariffs.Tariff `json:"tariffs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tariffs, len(tariffs.Builtin())+1)
	assert.Equal(t, "Bulb", body.Tariffs[len(body.Tariffs)-1].Supplier)
}

func TestNewMux_HealthAndRedirect(t *testing.T) {
	mux := NewMux(config.Config{StoreDriver: "memory"})

	for _, path := range []string{"/healthz", "/readyz", "/livez"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/ui/", rec.Header().Get("Location"))
}
