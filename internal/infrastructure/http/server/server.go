// Package server provides the HTTP server implementation
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"github.com/nuestrasrecetas/club/internal/infrastructure/config"
	"github.com/nuestrasrecetas/club/internal/infrastructure/http/handlers"
	"github.com/nuestrasrecetas/club/internal/infrastructure/http/middleware"
	"github.com/nuestrasrecetas/club/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config         *config.Config
	logger         *zap.Logger
	router         *chi.Mux
	server         *http.Server
	groceryService inbound.GroceryService
	recipeService  inbound.RecipeService
	planService    inbound.MealPlanService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	groceryService inbound.GroceryService,
	recipeService inbound.RecipeService,
	planService inbound.MealPlanService,
) *Server {
	s := &Server{
		config:         cfg,
		logger:         logger,
		groceryService: groceryService,
		recipeService:  recipeService,
		planService:    planService,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.RateLimit(s.config.Server.RateLimitPerSec, s.config.Server.RateLimitBurst))
	r.Use(middleware.NewMetrics().Instrument())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	h := handlers.NewAPIHandlers(s.groceryService, s.recipeService, s.planService, s.logger)

	r.Get("/health", h.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/groceries", h.BuildGroceries)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.ListRecipesByAuthor)
			r.Post("/", h.CreateRecipe)
			r.Get("/{id}", h.GetRecipe)
			r.Put("/{id}", h.UpdateRecipe)
			r.Delete("/{id}", h.DeleteRecipe)
			r.Post("/{id}/publish", h.PublishRecipe)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.ListPlans)
			r.Post("/", h.CreatePlan)
			r.Get("/{id}", h.GetPlan)
			r.Put("/{id}", h.UpdatePlan)
			r.Delete("/{id}", h.DeletePlan)
			r.Get("/{id}/groceries", h.PlanGroceries)
		})
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := http2.ConfigureServer(s.server, nil); err != nil {
		s.logger.Error("Failed to configure HTTP/2", zap.Error(err))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
