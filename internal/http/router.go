// Package httpapi assembles the service router. It wires middleware and
// mounts feature handlers; business logic stays in the feature packages.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	claimshandler "trustlynk/internal/adjudication/handler"
	"trustlynk/internal/platform/metrics"
	"trustlynk/internal/platform/middleware"
	legacyhandler "trustlynk/internal/settlement/handler"
	"trustlynk/pkg/platform/httputil"
)

// Registrar is implemented by feature handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter builds the full application router.
func NewRouter(
	logger *slog.Logger,
	m *metrics.Metrics,
	claims *claimshandler.Handler,
	legacy *legacyhandler.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(m))

	for _, h := range []Registrar{claims, legacy} {
		h.Register(r)
	}

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
