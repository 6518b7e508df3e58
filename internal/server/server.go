package server

import (
	"context"
	"net/http"

	"github.com/platewise/recipe-service/config"
	"github.com/platewise/recipe-service/internal/api"
	"github.com/platewise/recipe-service/internal/router"
	"github.com/platewise/recipe-service/internal/service"
)

// Server bounds the lifetime of the HTTP listener and the storage engine
// behind the recipe service.
type Server struct {
	http    *http.Server
	service *service.RecipeService
}

// New creates a server for the given configuration and service.
func New(cfg *config.Config, svc *service.RecipeService) *Server {
	engine := router.SetupRouter(api.NewRecipeHandler(svc), cfg.Service.Debug)
	return &Server{
		http:    &http.Server{Addr: cfg.Service.Addr, Handler: engine},
		service: svc,
	}
}

// Start opens the storage engine and serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if err := s.service.Start(ctx); err != nil {
		return err
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then releases the storage engine.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return s.service.Stop(ctx)
}
