package api

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arunsketh/energy/internal/api/swagger"
	"github.com/arunsketh/energy/internal/config"
	"github.com/arunsketh/energy/internal/storage"
	"github.com/arunsketh/energy/internal/tariffs"
	"github.com/arunsketh/energy/internal/ui"
)

// NewMux constructs the HTTP mux, wiring in the tariff service, metrics,
// swagger, the web UI, and health endpoints.
func NewMux(cfg config.Config) *http.ServeMux {
	ctx := context.Background()

	st, err := storage.Open(ctx, storage.Config{Driver: cfg.StoreDriver, DSN: cfg.StoreDSN})
	if err != nil {
		log.Printf("storage.Open failed (driver=%s dsn=%s): %v; falling back to in-memory store", cfg.StoreDriver, cfg.StoreDSN, err)
		st = storage.NewMemory()
	}

	svc := tariffs.NewServiceWithStorage(tariffs.Config{}, st)

	mux := http.NewServeMux()

	// Metrics endpoint.
	mux.Handle("/metrics", promhttp.Handler())

	// Health / readiness / liveness.
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			log.Printf("readyz: store ping failed: %v", err)
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("live"))
	})

	// Comparison and tariff API.
	RegisterComparisonHandler(mux, svc)
	RegisterTariffHandlers(mux, svc)

	// API documentation.
	mux.Handle("/swagger/", http.StripPrefix("/swagger", swagger.Handler()))

	// Web UI.
	mux.Handle("/ui/", http.StripPrefix("/ui/", ui.Handler()))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})

	return mux
}
