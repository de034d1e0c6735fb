package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/arunsketh/energy/internal/metrics"
	"github.com/arunsketh/energy/internal/tariffs"
)

// RegisterTariffHandlers mounts the tariff listing and custom-tariff
// endpoints.
func RegisterTariffHandlers(mux *http.ServeMux, svc *tariffs.Service) {
	mux.HandleFunc("/api/v1/tariffs", handleListTariffs(svc))
	mux.HandleFunc("/api/v1/tariffs/custom", handleAddCustomTariff(svc))
}

// handleListTariffs lists built-in and session custom tariffs.
// @Summary List tariffs
// @Description Get the built-in reference tariffs followed by session custom tariffs
// @Tags tariffs
// @Produce json
// @Success 200 {array} tariffs.Tariff
// @Router /api/v1/tariffs [get]
func handleListTariffs(svc *tariffs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		labelsPath := "/api/v1/tariffs"
		metrics.RequestsTotal.WithLabelValues(labelsPath).Inc()

		if r.Method != http.MethodGet {
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "405").Inc()
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		list, err := svc.ListTariffs(r.Context())
		if err != nil {
			log.Printf("list tariffs failed: %v", err)
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "500").Inc()
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		response := struct {
			Tariffs []tariffs.Tariff `json:"tariffs"`
		}{Tariffs: list}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// handleAddCustomTariff appends a custom tariff to the session collection.
// A blank supplier name is rejected with a 400 and a warning message so the
// UI can surface it without treating it as fatal.
// @Summary Add custom tariff
// @Description Append a user-supplied tariff to the session comparison set
// @Tags tariffs
// @Accept json
// @Produce json
// @Success 201 {object} tariffs.Tariff
// @Failure 400 {object} map[string]string
// @Router /api/v1/tariffs/custom [post]
func handleAddCustomTariff(svc *tariffs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		labelsPath := "/api/v1/tariffs/custom"
		defer func() {
			metrics.RequestDurationSeconds.WithLabelValues(labelsPath).Observe(time.Since(start).Seconds())
		}()
		metrics.RequestsTotal.WithLabelValues(labelsPath).Inc()

		if r.Method != http.MethodPost {
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "405").Inc()
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var t tariffs.Tariff
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "400").Inc()
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := svc.AddCustomTariff(r.Context(), t); err != nil {
			if errors.Is(err, tariffs.ErrBlankSupplier) {
				metrics.CustomTariffRejectionsTotal.Inc()
				metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "400").Inc()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"warning": "please enter a supplier name"})
				return
			}
			log.Printf("add custom tariff failed: %v", err)
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "500").Inc()
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if n, err := svc.CountCustomTariffs(r.Context()); err == nil {
			metrics.CustomTariffs.Set(float64(n))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(t)
	}
}
