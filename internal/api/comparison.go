package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/arunsketh/energy/internal/metrics"
	"github.com/arunsketh/energy/internal/tariffs"
)

// ComparisonRequest carries the user's consumption profile and current
// tariff. Omitted numeric fields decode to zero, which the cost model
// accepts as-is.
type ComparisonRequest struct {
	Profile    tariffs.ConsumptionProfile `json:"profile"`
	UserTariff tariffs.Tariff             `json:"user_tariff"`
}

// RegisterComparisonHandler mounts the comparison endpoint.
func RegisterComparisonHandler(mux *http.ServeMux, svc *tariffs.Service) {
	mux.HandleFunc("/api/v1/comparison", handleComparison(svc))
}

// handleComparison computes the full comparison set for the posted inputs.
// @Summary Compare tariffs
// @Description Cost every known tariff under the posted consumption profile
// @Tags comparison
// @Accept json
// @Produce json
// @Success 200 {object} tariffs.Comparison
// @Router /api/v1/comparison [post]
func handleComparison(svc *tariffs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		labelsPath := "/api/v1/comparison"
		defer func() {
			metrics.RequestDurationSeconds.WithLabelValues(labelsPath).Observe(time.Since(start).Seconds())
		}()
		metrics.RequestsTotal.WithLabelValues(labelsPath).Inc()

		if r.Method != http.MethodPost {
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "405").Inc()
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ComparisonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "400").Inc()
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		cmp, err := svc.BuildComparison(r.Context(), req.Profile, req.UserTariff)
		if err != nil {
			log.Printf("build comparison failed: %v", err)
			metrics.RequestErrorsTotal.WithLabelValues(labelsPath, "500").Inc()
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		metrics.ComparisonsTotal.Inc()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cmp); err != nil {
			log.Printf("encode response failed: %v", err)
		}
	}
}
