package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nexora-w/skinsearch/internal/domain"
	"github.com/nexora-w/skinsearch/internal/domain/catalog/item"
	"github.com/nexora-w/skinsearch/internal/domain/search/filter"
	"github.com/nexora-w/skinsearch/internal/domain/search/request"
	"github.com/nexora-w/skinsearch/internal/domain/search/result"
	"github.com/nexora-w/skinsearch/internal/logger"
	healthuc "github.com/nexora-w/skinsearch/internal/usecase/health"
)

// maxFilterValueLength bounds attribute filter values.
const maxFilterValueLength = 128

// Searcher runs catalog searches and item lookups.
type Searcher interface {
	Search(ctx context.Context, req *request.Request) (result.Page, error)
	Get(ctx context.Context, id string) (item.Item, error)
}

// HealthChecker produces a health report.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the catalog search HTTP API.
type Server struct {
	search        Searcher
	health        HealthChecker
	limits        request.Limits
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search Searcher, health HealthChecker, limits request.Limits, logger *zap.Logger) *Server {
	s := &Server{
		search:  search,
		health:  health,
		limits:  limits,
		metrics: promhttp.Handler(),
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		invalidQueryHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrQueryTooBroad, http.StatusBadRequest, ErrorCodeQueryTooBroad),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, ErrorCodeStoreUnavailable),
	}
	return s
}

// WithMetricsHandler replaces the default Prometheus handler (custom registries).
func (s *Server) WithMetricsHandler(h http.Handler) *Server {
	if h != nil {
		s.metrics = h
	}
	return s
}

// Mount registers all routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/search", s.Search)
	r.Get("/items/{id}", s.GetItem)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed")
	})
}

// Search handles GET /search?q=&page=&limit=.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	filters, err := filtersFromParams(&params)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	req, err := request.New(deref(params.Q), derefInt(params.Page), derefInt(params.Limit), s.limits, filters)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	page, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(&page))
}

// GetItem handles GET /items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	it, err := s.search.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToResponse(&it))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

// bindSearchParams reads query parameters. Malformed page/limit fall back to
// defaults; only a repeated or malformed q or filter is rejected.
func bindSearchParams(r *http.Request) (SearchParams, error) {
	var p SearchParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "q", query, &p.Q); err != nil {
		return SearchParams{}, errors.New("invalid parameter q")
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &p.Page); err != nil {
		logger.FromContext(r.Context()).Debug("ignoring malformed page", zap.Error(err))
		p.Page = nil
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &p.Limit); err != nil {
		logger.FromContext(r.Context()).Debug("ignoring malformed limit", zap.Error(err))
		p.Limit = nil
	}

	for name, dest := range map[string]**string{
		filter.KeyWeapon:   &p.Weapon,
		filter.KeyCategory: &p.Category,
		filter.KeyRarity:   &p.Rarity,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			return SearchParams{}, errors.New("invalid parameter " + name)
		}
	}

	return p, nil
}

func filtersFromParams(p *SearchParams) (filter.Expression, error) {
	var conds []filter.Condition
	for _, kv := range []struct {
		key string
		val *string
	}{
		{filter.KeyWeapon, p.Weapon},
		{filter.KeyCategory, p.Category},
		{filter.KeyRarity, p.Rarity},
	} {
		if kv.val == nil || *kv.val == "" {
			continue
		}
		if len(*kv.val) > maxFilterValueLength {
			return filter.Expression{}, errors.New("parameter " + kv.key + " is too long")
		}
		c, err := filter.NewMatch(kv.key, *kv.val)
		if err != nil {
			return filter.Expression{}, err //nolint:wrapcheck // validation message is returned to the client
		}
		conds = append(conds, c)
	}

	expr, err := filter.NewExpression(conds...)
	if err != nil {
		return filter.Expression{}, err //nolint:wrapcheck // validation message is returned to the client
	}
	return expr, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error
// and answers with the sentinel's own message, never the wrapped detail.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// invalidQueryHandler exposes the validation detail, which carries no internals.
func invalidQueryHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrInvalidQuery) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))
	log.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
