package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/san-kum/tensile/internal/config"
	"github.com/san-kum/tensile/internal/ingest"
	"golang.org/x/time/rate"
)

// Server owns the HTTP listener. Handlers keep no state between requests;
// each request runs its own analysis.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	resolver ingest.Resolver
	router   *mux.Router
}

func New(cfg *config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg: cfg,
		log: log,
		resolver: ingest.Resolver{
			DisplacementKeys: cfg.Columns.Displacement,
			LoadKeys:         cfg.Columns.Load,
		},
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	limiter := NewIPRateLimiter(rate.Limit(s.cfg.Server.RateLimit), s.cfg.Server.RateBurst)

	s.router.Use(requestLogger(s.log))
	s.router.Use(CORS(s.cfg.Server.AllowOrigin))

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)

	calc := api.NewRoute().Subrouter()
	calc.Use(limiter.Middleware)
	calc.HandleFunc("/analyze", s.analyzeUpload).Methods(http.MethodPost, http.MethodOptions)
	calc.HandleFunc("/analyze/series", s.analyzeSeries).Methods(http.MethodPost, http.MethodOptions)
	calc.HandleFunc("/report", s.report).Methods(http.MethodPost, http.MethodOptions)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
