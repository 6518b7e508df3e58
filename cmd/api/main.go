package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platewise/recipe-service/config"
	"github.com/platewise/recipe-service/internal/server"
	"github.com/platewise/recipe-service/internal/service"
	"github.com/platewise/recipe-service/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the service configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	store, err := storage.Open(cfg.RecipesDB)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}

	svc := service.NewRecipeService(store)
	srv := server.New(cfg, svc)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s (%s storage)...", cfg.Service.Addr, cfg.RecipesDB.Kind)
		errChan <- srv.Start(context.Background())
	}()

	// Block until we receive a signal or a server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
