package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// UseCases bundles the use cases the HTTP layer depends on
type UseCases struct {
	Board      interfaces.BoardUseCase
	Visit      interfaces.VisitUseCase
	Disclaimer interfaces.DisclaimerUseCase
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	uc UseCases,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	if uc.Board == nil || uc.Visit == nil || uc.Disclaimer == nil {
		return nil, goerr.New("board, visit and disclaimer use cases are required")
	}

	page, err := newPageHandler(uc.Board, uc.Visit, uc.Disclaimer)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create page handler")
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", healthHandler(uc.Board))

	// Landing page and static assets
	router.Get("/", page.Handle)
	router.Handle("/static/*", staticHandler())
	router.Post("/disclaimer/acknowledge", handleDisclaimerAcknowledge(uc.Disclaimer))

	// Visit tracking accepts any method
	router.HandleFunc("/api/visit", handleVisit(uc.Visit))
	router.Get("/api/releases", handleReleases(uc.Board))

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
