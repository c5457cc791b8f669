package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finsight/internal/cache"
	"finsight/internal/config"
	"finsight/internal/database"
	"finsight/internal/handlers"
	"finsight/internal/middleware"
	"finsight/internal/repositories"
	"finsight/internal/services"
	"finsight/internal/sources"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	requestCache := buildCache(cfg)
	historyStore := cache.NewHistoryStore(cfg.Engine.HistoryCap, cfg.Engine.HistoryDedupWindow)
	store := repositories.NewDocumentStore(db)

	narrative, err := services.NewNarrativeService(context.Background(), &cfg.Narrative)
	if err != nil {
		slog.Warn("narrative generator unavailable, using rule-based insights", "error", err)
		narrative = services.NewRuleBasedNarrativeService()
	}

	demoProvider := sources.NewDemoProvider()
	var provider sources.AccountProvider
	if cfg.Provider.BaseURL != "" {
		provider = sources.NewHTTPProvider(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout)
	} else {
		slog.Warn("PROVIDER_BASE_URL not set, serving demo data for live requests")
		provider = demoProvider
	}

	aggregationService := services.NewAggregationService(services.AggregationDeps{
		Provider:     provider,
		DemoProvider: demoProvider,
		Store:        store,
		Normalizer:   services.NewNormalizerService(),
		NetWorth:     services.NewNetWorthService(),
		Validator:    services.NewMetricsValidator(&cfg.Engine),
		Trends:       services.NewTrendService(&cfg.Engine),
		Projections:  services.NewProjectionService(),
		Narrative:    narrative,
		Cache:        requestCache,
		History:      historyStore,
		Metrics:      services.NewPrometheusMetrics(),
		Config:       cfg,
	})

	overviewHandler := handlers.NewOverviewHandler(aggregationService)
	trendsHandler := handlers.NewTrendsHandler(aggregationService)
	entriesHandler := handlers.NewEntriesHandler(store)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.Recover())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(&cfg.Auth))
	api.GET("/overview", overviewHandler.GetOverview)
	api.GET("/networth", overviewHandler.GetNetWorth)
	api.GET("/trends", trendsHandler.GetTrends)
	api.GET("/trends/projection", trendsHandler.GetProjection)
	api.GET("/entries", entriesHandler.ListEntries)
	api.POST("/entries/assets", entriesHandler.CreateManualAsset)
	api.POST("/entries/liabilities", entriesHandler.CreateManualLiability)
	api.POST("/entries/crypto", entriesHandler.CreateCryptoHolding)
	api.POST("/entries/real-estate", entriesHandler.CreateRealEstateEntry)
	api.POST("/entries/pensions", entriesHandler.CreatePensionEntry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// buildCache selects the cache backend. A Redis backend that cannot be
// reached at startup is a configuration error worth failing fast on.
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemoryCache()
	}

	redisCache := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		slog.Error("failed to connect to redis", "addr", cfg.Cache.RedisAddr, "error", err)
		os.Exit(1)
	}
	return redisCache
}
