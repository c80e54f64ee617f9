package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gasthof/internal/config"
	"gasthof/internal/domain"
	"gasthof/internal/export"

	"github.com/rs/zerolog"
)

// HTTPServer exposes the booking and search workflows over HTTP.
type HTTPServer struct {
	cfg      config.APIConfig
	service  domain.BookingService
	engine   domain.SearchEngine
	cache    domain.ResultCache
	exporter *export.Exporter
	logger   *zerolog.Logger
	server   *http.Server
	auth     *HTTPAuth
}

func NewHTTPServer(cfg config.APIConfig, service domain.BookingService, engine domain.SearchEngine,
	cache domain.ResultCache, exporter *export.Exporter, logger *zerolog.Logger) *HTTPServer {
	mux := http.NewServeMux()
	srv := &HTTPServer{
		cfg:      cfg,
		service:  service,
		engine:   engine,
		cache:    cache,
		exporter: exporter,
		logger:   logger,
	}
	srv.auth = NewHTTPAuth(cfg)

	mux.HandleFunc("/api/v1/inquiries", srv.handleInquiries)
	mux.HandleFunc("/api/v1/bookings", srv.handleListConfirmed)
	mux.HandleFunc("/api/v1/bookings/", srv.handleBookings)
	mux.HandleFunc("/api/v1/search/rebuild", srv.handleSearchRebuild)
	mux.HandleFunc("/api/v1/search", srv.handleSearch)
	mux.HandleFunc("/health", srv.handleHealth)

	handler := srv.loggingMiddleware(requestIDMiddleware(srv.auth.Wrap(mux)))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
