package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/plateworks/menucost/internal/config"
	"github.com/plateworks/menucost/internal/handlers"
	"github.com/plateworks/menucost/internal/middleware"
	"github.com/plateworks/menucost/internal/pricing"
	"github.com/plateworks/menucost/internal/repository"
	"github.com/plateworks/menucost/internal/service"
	"github.com/plateworks/menucost/internal/storage"
	"github.com/plateworks/menucost/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting menu costing server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"data_file", cfg.Storage.DataFile,
		"pricing_variant", cfg.Pricing.Variant,
		"log_level", cfg.LogLevel,
	)

	// Open the key-value snapshot file
	kv, err := storage.NewFileStore(cfg.Storage.DataFile)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	ingredientRepo := repository.NewIngredientRepository(kv)
	draftRepo := repository.NewDraftRepository(kv)
	recipeRepo := repository.NewRecipeRepository(kv)
	configRepo := repository.NewConfigRepository(kv)

	// Initialize services
	variant := pricing.Variant(cfg.Pricing.Variant)
	catalogService := service.NewCatalogService(ingredientRepo, draftRepo)
	configService := service.NewConfigService(configRepo)
	draftService := service.NewDraftService(draftRepo, ingredientRepo, configRepo, variant)
	recipeService := service.NewRecipeService(recipeRepo, draftService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	ingredientHandler := handlers.NewIngredientHandler(catalogService, log)
	draftHandler := handlers.NewDraftHandler(draftService, log)
	recipeHandler := handlers.NewRecipeHandler(recipeService, log)
	configHandler := handlers.NewConfigHandler(configService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		if cfg.Auth.Enabled {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
		}

		// Ingredient catalog
		r.Get("/ingredient", ingredientHandler.List)
		r.Post("/ingredient", ingredientHandler.Upsert)
		r.Delete("/ingredient/{key}", ingredientHandler.Remove)

		// Recipe draft
		r.Get("/draft", draftHandler.View)
		r.Delete("/draft", draftHandler.Clear)
		r.Post("/draft/item", draftHandler.AddItem)
		r.Delete("/draft/item/{itemId}", draftHandler.RemoveItem)
		r.Get("/draft/name", draftHandler.GetName)
		r.Put("/draft/name", draftHandler.SetName)

		// Saved recipes
		r.Get("/recipe", recipeHandler.List)
		r.Post("/recipe", recipeHandler.Save)
		r.Delete("/recipe/{recipeId}", recipeHandler.Remove)
		r.Post("/recipe/{recipeId}/load", recipeHandler.Load)

		// Size pricing
		r.Get("/pricing", draftHandler.Breakdown)
		r.Get("/config", configHandler.Get)
		r.Put("/config", configHandler.Update)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
