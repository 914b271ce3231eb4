// Package api exposes brief analysis over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/api/handler"
	mw "github.com/HendryAvila/briefcheck/internal/api/middleware"
	"github.com/HendryAvila/briefcheck/internal/api/response"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Dependencies holds everything the router needs.
type Dependencies struct {
	Version     string
	DefaultMode analyzer.Mode
	// Store may be nil; saved-brief routes then answer 503.
	Store briefs.Store
	Log   zerolog.Logger
	Now   func() time.Time
}

// NewRouter builds the chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.Logger(deps.Log))
	r.Use(mw.Recovery(deps.Log))
	r.Use(mw.MaxBody(maxBodyBytes))

	r.Get("/api/v1/health", handler.NewHealthHandler(deps.Version, deps.Store != nil))
	r.Post("/api/v1/analyze", handler.NewAnalyzeHandler(deps.DefaultMode))

	r.Route("/api/v1/briefs", func(r chi.Router) {
		if deps.Store == nil {
			r.HandleFunc("/*", storageUnavailable)
			r.HandleFunc("/", storageUnavailable)
			return
		}
		h := &handler.Briefs{Store: deps.Store, DefaultMode: deps.DefaultMode, Now: deps.Now}
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/export", h.Export)
	})

	return r
}

func storageUnavailable(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusServiceUnavailable, response.CodeStorageUnavailable,
		"Saved briefs are unavailable: storage is disabled", nil)
}

// Serve runs the HTTP server until ctx is cancelled, then drains
// connections for up to shutdownTimeout.
func Serve(ctx context.Context, addr string, h http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}
