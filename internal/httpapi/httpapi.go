package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/application/service"
	"github.com/TemirB/settlement-analytics/internal/domain"
	"github.com/TemirB/settlement-analytics/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

const (
	welcomeMessage = "Welcome to Analytics Backend"
	unknownError   = "Unknown Error Occured"
)

type QueryService interface {
	ListOrdersWithStats(ctx context.Context, c service.Criteria) (service.Enriched, service.QueryStats, error)
	SearchByAddressWithStats(ctx context.Context, address string) (service.SearchResult, service.QueryStats, error)
	AddTag(ctx context.Context, address, tag string) (domain.UserTags, error)
}

type MarketStore interface {
	ThorchainSwaps(ctx context.Context) ([]domain.CrossChainSwap, error)
	ChainflipSwaps(ctx context.Context) ([]domain.CrossChainSwap, error)
	BTCClosingPrices(ctx context.Context) ([]domain.ClosingPrice, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	RequestTimeout time.Duration
	CORSOrigins    []string
	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler
}

type Server struct {
	service QueryService
	market  MarketStore
	db      Pinger
	router  chi.Router
	opts    Options
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(svc QueryService, market MarketStore, db Pinger, opts Options, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		service: svc,
		market:  market,
		db:      db,
		router:  chi.NewRouter(),
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		AccessLog(s.logger),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Server-Timing", "X-Source", "X-Fetch-Time", "X-Tags-Degraded"},
			MaxAge:         300,
		}),
		ServerTimingApp(s.metrics),
	)
	if s.opts.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.opts.RequestTimeout))
	}

	s.router.Get("/", s.home)
	s.router.Get("/healthz", s.healthz)
	if s.opts.MetricsHandler != nil {
		s.router.Handle("/metrics", s.opts.MetricsHandler)
	}

	s.router.Get("/orders", s.listOrders)
	s.router.Get("/tag", s.addTag)
	s.router.Get("/search", s.search)

	s.router.Get("/thorchain", s.thorchain)
	s.router.Get("/chainflip", s.chainflip)
	s.router.Get("/btc-prices", s.btcPrices)
}

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, welcomeMessage)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	from, err := int64Param(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := int64Param(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, st, err := s.service.ListOrdersWithStats(r.Context(), service.Criteria{From: from, To: to})
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	setQueryHeaders(w, st)
	writeJSON(w, http.StatusOK, res.Orders)
}

type tagResponse struct {
	Status string           `json:"status"`
	Result *domain.UserTags `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// addTag answers 200 even when the store write fails; the outcome is in the
// body's status field.
func (s *Server) addTag(w http.ResponseWriter, r *http.Request) {
	address, ok := requiredParam(w, r, "address")
	if !ok {
		return
	}
	tag, ok := requiredParam(w, r, "tag")
	if !ok {
		return
	}

	row, err := s.service.AddTag(r.Context(), address, tag)
	if err != nil {
		writeJSON(w, http.StatusOK, tagResponse{Status: "ERROR", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, tagResponse{Status: "OK", Result: &row})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	address, ok := requiredParam(w, r, "address")
	if !ok {
		return
	}

	res, st, err := s.service.SearchByAddressWithStats(r.Context(), address)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	setQueryHeaders(w, st)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) thorchain(w http.ResponseWriter, r *http.Request) {
	swaps, err := s.market.ThorchainSwaps(r.Context())
	s.writeMarket(w, "thorchain", swaps, err)
}

func (s *Server) chainflip(w http.ResponseWriter, r *http.Request) {
	swaps, err := s.market.ChainflipSwaps(r.Context())
	s.writeMarket(w, "chainflip", swaps, err)
}

func (s *Server) btcPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := s.market.BTCClosingPrices(r.Context())
	s.writeMarket(w, "btc-prices", prices, err)
}

func (s *Server) writeMarket(w http.ResponseWriter, name string, v any, err error) {
	if err != nil {
		s.logger.Error("market query failed", zap.String("endpoint", name), zap.Error(err))
		http.Error(w, unknownError, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func setQueryHeaders(w http.ResponseWriter, st service.QueryStats) {
	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.AppendServerTiming(w, "fetch", st.FetchMs, "")
	observability.AppendServerTiming(w, "enrich", st.EnrichMs, "")
	observability.AppendServerTiming(w, "source", 0, string(st.Source))
	if st.Source != "" {
		w.Header().Set("X-Source", string(st.Source))
	}
	observability.SetIfPos(w, "X-Fetch-Time", st.FetchMs)
	if st.Degraded > 0 {
		w.Header().Set("X-Tags-Degraded", strconv.Itoa(st.Degraded))
	}
}

var errMissingParam = errors.New("missing query parameter")

func requiredParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, &paramError{name: name, err: errMissingParam})
		return "", false
	}
	return v, true
}

// int64Param returns nil when the parameter is absent.
func int64Param(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &paramError{name: name, err: err}
	}
	return &n, nil
}

type paramError struct {
	name string
	err  error
}

func (e *paramError) Error() string { return "invalid parameter " + e.name + ": " + e.err.Error() }
func (e *paramError) Unwrap() error { return e.err }

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }
