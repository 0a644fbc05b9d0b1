package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/munchhq/munch-backend/internal/adapters/database"
	"github.com/munchhq/munch-backend/internal/api/handlers"
	"github.com/munchhq/munch-backend/internal/api/routes"
	"github.com/munchhq/munch-backend/internal/application/services"
	"github.com/munchhq/munch-backend/internal/infrastructure/clients/postgres"
	"github.com/munchhq/munch-backend/internal/infrastructure/observability"
	"github.com/munchhq/munch-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("munch-api", cfg.App.Environment)

	// The reference zone is part of the engine's contract; refusing to start
	// beats silently evaluating weekdays in the wrong zone.
	resolver, err := services.NewTimeResolver(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("invalid reference time zone")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Initialize adapters
	dealAdapter := database.NewDealAdapter(pgClient)
	restaurantAdapter := database.NewRestaurantAdapter(pgClient)

	// Initialize services
	dealService := services.NewDealQueryService(dealAdapter, resolver, cfg.App.DefaultLimit, cfg.App.MaxLimit)
	restaurantService := services.NewRestaurantService(restaurantAdapter, cfg.App.DefaultLimit, cfg.App.MaxLimit)

	// Initialize handlers
	dealHandler := handlers.NewDealHandler(dealService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	healthHandler := handlers.NewHealthHandler(pgClient)

	// Set up router
	router := routes.NewRouter(dealHandler, restaurantHandler, healthHandler)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Str("timezone", cfg.App.Timezone).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
