package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-directory/config"
	"restaurant-directory/handlers"
	"restaurant-directory/logger"
	"restaurant-directory/routes"
	"restaurant-directory/seed"
	"restaurant-directory/services"

	"go.uber.org/zap"
)

const serviceName = "restaurant-api"

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env", config.Defaults{ServerPort: "3001", DBDSN: "restaurants.db"})
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogOutputPath,
		Service:    serviceName,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)
	zap.L().Info("Configuration loaded", zap.String("env", cfg.Env))
	for _, key := range cfg.InsecureSecrets() {
		zap.L().Warn("Signing secret is using its built-in fallback, set it before deploying", zap.String("key", key))
	}

	// --- Database ---
	db, err := config.InitDB(cfg)
	if err != nil {
		zap.L().Fatal("Failed to open database", zap.Error(err))
	}
	if err := config.MigrateRestaurants(db); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	report, err := seed.SeedCities(seedCtx, db)
	seedCancel()
	if err != nil {
		zap.L().Fatal("Failed to seed cities", zap.Error(err))
	}
	zap.L().Info("Seeding finished", zap.Int("cities", report.CreatedCities), zap.Bool("noop", report.Noop))

	// --- Dependency Injection ---
	// Only the access secret matters here: this service verifies tokens
	// issued by users-api and never signs any.
	tokenSvc := services.NewTokenService(services.TokenConfig{
		AccessSecret:  cfg.JWTSecret,
		RefreshSecret: cfg.RefreshSecret,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	})
	restaurantSvc := services.NewRestaurantService(db, log.Named("RestaurantService"))
	menuSvc := services.NewMenuService(db, log.Named("MenuService"))
	citySvc := services.NewCityService(db, log.Named("CityService"))

	router := routes.NewEngine(cfg, log, serviceName)
	routes.SetupRestaurantRoutes(router, tokenSvc,
		handlers.NewRestaurantHandler(restaurantSvc, menuSvc),
		handlers.NewCityHandler(citySvc),
	)

	// --- HTTP Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zap.L().Info("Server exiting")
}
