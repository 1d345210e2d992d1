package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	teamsd "github.com/information-sharing-networks/teamsd"
	"github.com/information-sharing-networks/teamsd/internal/apperrors"
	"github.com/information-sharing-networks/teamsd/internal/client"
	"github.com/information-sharing-networks/teamsd/internal/config"
	"github.com/information-sharing-networks/teamsd/internal/logger"
	"github.com/information-sharing-networks/teamsd/internal/server/handlers"
	"github.com/information-sharing-networks/teamsd/internal/server/middleware"
	"github.com/information-sharing-networks/teamsd/internal/server/responses"
	"github.com/information-sharing-networks/teamsd/internal/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	router    *chi.Mux
	config    *config.Config
	logger    *slog.Logger
	apiClient *client.Client
}

// NewServer creates the ui-api gateway. All routes forward to the backend at cfg.APIBaseURL.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	apiClient := client.NewClient(cfg.APIBaseURL,
		client.WithTimeout(cfg.ClientTimeout),
		client.WithLogger(logger),
	)

	return NewServerWithClient(cfg, logger, apiClient)
}

// NewServerWithClient creates the gateway using an existing backend client
func NewServerWithClient(cfg *config.Config, logger *slog.Logger, apiClient *client.Client) (*Server, error) {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		logger:    logger,
		apiClient: apiClient,
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.RegisterRoutes(s.router)
	return s, nil
}

// Router returns the configured http handler
func (s *Server) Router() http.Handler {
	return s.router
}

// RegisterRoutes registers the health check and the ui-api routes on the router
func (s *Server) RegisterRoutes(router chi.Router) {
	handlerService := handlers.NewHandlerService(s.apiClient)

	router.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		responses.RespondWithStatusCodeOnly(w, http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		responses.RespondWithJSON(w, http.StatusOK, version.Get())
	})

	router.Route("/ui-api", func(r chi.Router) {
		r.Use(middleware.RequestSizeLimit(s.config.MaxRequestBytes))

		// company selection
		r.Post("/login", handlerService.Login)

		r.Route("/companies/{companyID}", func(r chi.Router) {
			// teams screen
			r.Get("/teams", handlerService.ListTeams)
			r.Post("/teams", handlerService.CreateTeam)

			// team projects screen
			r.Get("/teams/{teamID}/projects", handlerService.ListProjects)
			r.Post("/teams/{teamID}/projects", handlerService.CreateProject)
			r.Patch("/teams/{teamID}/projects/{projectID}", handlerService.UpdateProject)

			// user registry screen
			r.Get("/users", handlerService.ListUsers)
			r.Post("/users", handlerService.CreateUser)
			r.Delete("/users/{userID}", handlerService.DeleteUser)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.RespondWithError(w, r, http.StatusNotFound, apperrors.ErrCodeResourceNotFound, "not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.RespondWithError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed, "method not allowed")
	})
}

func (s *Server) setupMiddleware() error {
	corsMiddleware, err := middleware.NewCORS(s.config.AllowedOrigins)
	if err != nil {
		return err
	}

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.Metrics)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(teamsd.GatewayRequestTimeout))
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(middleware.CORS(corsMiddleware))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))

	return nil
}

// Start runs the gateway until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	addr := s.config.Addr()

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("ui-api server listening",
			slog.String("address", addr),
			slog.String("api_base_url", s.apiClient.BaseURL()),
			slog.String("version", version.Get().Version),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down ui-api server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), teamsd.ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}
