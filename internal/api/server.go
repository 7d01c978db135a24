// Package api provides the HTTP API server and handlers for the Record Candy application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/recordcandy/recordcandy-server/internal/ratelimit"
	"github.com/recordcandy/recordcandy-server/internal/service"
	"github.com/recordcandy/recordcandy-server/internal/store"
	"github.com/recordcandy/recordcandy-server/internal/validation"
)

// Per-client throttle on search endpoints. Every search hit fans out to the
// metadata providers, so this caps how fast one client can spend quota.
const (
	searchRPS   = 5
	searchBurst = 10
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	records   *service.RecordService
	search    *service.SearchService
	movies    MovieCatalog
	books     BookCatalog
	validator *validation.Validator
	limiter   *ratelimit.KeyedLimiter
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, records *service.RecordService, search *service.SearchService, movies MovieCatalog, books BookCatalog, validator *validation.Validator, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	limiter := ratelimit.New(searchRPS, searchBurst)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(searchRateLimit(limiter))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("Record Candy API", "1.0.0")
	humaAPI := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:     st,
		records:   records,
		search:    search,
		movies:    movies,
		books:     books,
		validator: validator,
		limiter:   limiter,
		router:    router,
		api:       humaAPI,
		logger:    logger,
	}

	s.registerHealthRoutes()
	s.registerRecordRoutes()
	s.registerSearchRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}
