package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"velo-altitude/internal/config"
	"velo-altitude/internal/enrichment"
	"velo-altitude/internal/location"
	"velo-altitude/internal/profile"
	"velo-altitude/internal/store"
	"velo-altitude/internal/weather"
)

const shutdownTimeout = 10 * time.Second

// Services are the domain services the API delegates to
type Services struct {
	Synthesizer *profile.Synthesizer
	Weather     weather.Service
	Locations   location.Service
	Enrichment  *enrichment.Service
}

// App encapsulates application dependencies
type App struct {
	router   *gin.Engine
	api      huma.API
	logger   *slog.Logger
	cfg      *config.Config
	services Services
	redis    *redis.Client
}

// NewApp creates a new application with real services built from configuration
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	weatherSvc, err := weather.NewWeatherService(logger)
	if err != nil {
		return nil, err
	}

	records, redisClient, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	locations := location.NewLocationService(logger)
	var summitLookup location.Service
	if cfg.App.ResolveLocation {
		summitLookup = locations
	}

	synth := profile.NewSynthesizer(profile.WithPointsPerKm(cfg.App.PointsPerKm))
	enricher := enrichment.NewService(synth, weatherSvc, summitLookup, records, enrichment.Options{
		DefaultSeed:   cfg.App.DefaultSeed,
		WriteInterval: cfg.App.WriteInterval,
	}, logger)

	app := NewAppWithServices(cfg, logger, Services{
		Synthesizer: synth,
		Weather:     weatherSvc,
		Locations:   locations,
		Enrichment:  enricher,
	})
	app.redis = redisClient
	return app, nil
}

// NewAppWithServices creates an application with custom services.
// This is useful for testing.
func NewAppWithServices(cfg *config.Config, logger *slog.Logger, services Services) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Create Huma API on top of gin
	humaConfig := huma.DefaultConfig("Velo-Altitude API", "1.0.0")
	humaConfig.Info.Description = "Elevation profiles, terrain, climate and render settings for cycling climbs"
	humaConfig.Servers = []*huma.Server{
		{URL: fmt.Sprintf("http://localhost:%d", cfg.Server.Port), Description: "Development server"},
	}

	app := &App{
		router:   router,
		api:      humagin.New(router, humaConfig),
		logger:   logger,
		cfg:      cfg,
		services: services,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized", "store", cfg.Store.Driver, "ginMode", cfg.Server.GinMode)
	return app
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store[enrichment.EnrichedClimb], *redis.Client, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case "redis":
		client, err := store.Connect(ctx, store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedis[enrichment.EnrichedClimb](client, cfg.Redis.KeyPrefix, cfg.Redis.TTL, logger), client, nil
	default:
		return store.NewMemory[enrichment.EnrichedClimb](), nil, nil
	}
}

// Handler exposes the router for tests and custom servers
func (app *App) Handler() http.Handler {
	return app.router
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("shutting down server")

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases external connections
func (app *App) Close() error {
	if app.redis != nil {
		return app.redis.Close()
	}
	return nil
}
