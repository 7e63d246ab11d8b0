package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"appcatalog/catalog/domain"
	"appcatalog/catalog/dto"

	"github.com/sirupsen/logrus"
)

const (
	routeHealth      = "GET /api/v1/actuators/health"
	routeApplication = "GET /api/v1/applications/{id}"
	routeListSlash   = "GET /api/v1/applications/{$}"
	routeList        = "GET /api/v1/applications"

	listErrorMessage  = "Error fetching applications"
	limitErrorMessage = "invalid limit parameter"
)

// Catalog é o que os handlers consomem da camada application.
type Catalog interface {
	Lister
	FindByID(ctx context.Context, key domain.Key) (domain.Application, error)
}

type Options struct {
	MaxLimit      int
	ServerContext string
	Logger        logrus.FieldLogger
	// Now é usado na data do corpo de erro. Padrão: time.Now.
	Now func() time.Time
}

// Handler roteia a API do catálogo.
type Handler struct {
	catalog Catalog
	pages   Paginator
	logger  logrus.FieldLogger
	now     func() time.Time
	mux     *http.ServeMux
}

func NewHandler(c Catalog, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	h := &Handler{
		catalog: c,
		pages: Paginator{
			Lister:        c,
			MaxLimit:      opts.MaxLimit,
			ServerContext: opts.ServerContext,
			Logger:        opts.Logger,
		},
		logger: opts.Logger,
		now:    opts.Now,
		mux:    http.NewServeMux(),
	}

	h.mux.HandleFunc(routeHealth, h.health)
	h.mux.HandleFunc(routeApplication, h.getApplication)
	h.mux.HandleFunc(routeListSlash, h.listApplications)
	h.mux.HandleFunc(routeList, h.listApplications)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Route devolve o padrão registrado que atende r, ou "unmatched".
// Útil para métricas/estatísticas sem explodir cardinalidade com ids.
func (h *Handler) Route(r *http.Request) string {
	if _, pattern := h.mux.Handler(r); pattern != "" {
		return pattern
	}
	return "unmatched"
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	app, err := h.catalog.FindByID(r.Context(), domain.Key(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.logger.WithError(err).WithField("id", id).Error("error fetching application")
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching application with ID %s", id), h.now())
		return
	}

	writeJSON(w, http.StatusOK, dto.FromApplication(app))
}

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	requested, err := ParseLimit(q.Get("limit"))
	if err != nil {
		h.logger.WithError(err).Debug("rejecting list request")
		WriteError(w, http.StatusBadRequest, limitErrorMessage, h.now())
		return
	}
	pageKey := domain.Key(strings.TrimSpace(q.Get("page")))

	page := h.pages.Fetch(r.Context(), pageKey, requested)
	switch page.Outcome {
	case OutcomeOK:
		w.Header().Set("Link", page.Link)
		writeJSON(w, http.StatusOK, page.Items)
	case OutcomeNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		WriteError(w, http.StatusInternalServerError, listErrorMessage, h.now())
	}
}
