// Package httptransport is the thin HTTP layer. It delegates to the domain
// services without embedding business logic so transport concerns stay
// isolated.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salaire/internal/domaingate"
	"salaire/internal/salary/query"
	"salaire/internal/salary/service"
)

// GateLoader produces the denylist gate snapshot for one submission session.
type GateLoader interface {
	Load(ctx context.Context) *domaingate.Gate
}

// ReferenceStore serves the lookup lists behind the form's select options.
type ReferenceStore interface {
	ListTitles(ctx context.Context) ([]string, error)
	ListCities(ctx context.Context) ([]string, error)
}

// Handler bundles the dependencies of the public endpoints.
type Handler struct {
	service   *service.Service
	engine    *query.Engine
	reference ReferenceStore
	gates     GateLoader
	logger    *slog.Logger
}

func NewHandler(svc *service.Service, engine *query.Engine, reference ReferenceStore, gates GateLoader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:   svc,
		engine:    engine,
		reference: reference,
		gates:     gates,
		logger:    logger,
	}
}

// NewRouter wires all public endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/salaires", h.handleSubmit)
		r.Get("/salaires", h.handleQuery)
		r.Get("/confirm", h.handleConfirm)
		r.Get("/postes", h.handleTitles)
		r.Get("/villes", h.handleCities)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
