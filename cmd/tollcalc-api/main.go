// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tollwise/internal/ai"
	"tollwise/internal/config"
	httptransport "tollwise/internal/http"
	"tollwise/internal/infra"
	"tollwise/internal/maps"
	"tollwise/internal/modules/costing"
	"tollwise/internal/modules/segment"
	"tollwise/internal/modules/trip"
	"tollwise/internal/pkg/logger"
	"tollwise/internal/rules"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table := rules.DefaultTable()
	if cfg.Database.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.Database.DSN)
		if err != nil {
			zapLog.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()

		loaded, overrides, err := rules.NewStore(dbPool).LoadTable(ctx)
		if err != nil {
			zapLog.Fatal("load price overrides", zap.Error(err))
		}
		table = loaded
		zapLog.Info("price overrides applied", zap.Int("count", len(overrides)))
	}

	var cache *maps.GeocodeCache
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			zapLog.Fatal("redis init", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		cache = maps.NewGeocodeCache(redisClient, cfg.Redis.GeocodeTTL)
	}

	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		zapLog.Fatal("maps init", zap.Error(err))
	}
	geocoder, err := maps.NewGeocoder(cfg.Maps.APIKey, cache)
	if err != nil {
		zapLog.Fatal("geocoder init", zap.Error(err))
	}

	var detector ai.Detector
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiDetector(ctx, cfg.AI.GeminiKey, table)
		if err != nil {
			zapLog.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		detector = gemini
	} else {
		zapLog.Info("no gemini key, toll detection uses route geometry only")
	}

	engine := segment.NewEngine(table, geocoder, zapLog,
		segment.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.Resolver.RatePerSec), 1)),
		segment.WithWorkers(cfg.Resolver.Workers))

	tripSvc := trip.NewService(table, routeSvc, engine, detector, geocoder,
		costing.NewService(table), zapLog)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Trips: tripSvc,
		Table: table,
		Log:   zapLog,
		Env:   cfg.Server.Env,
	})

	server := &http.Server{Addr: cfg.ServerAddr(), Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("shutdown", zap.Error(err))
		}
	}()

	zapLog.Info("listening", zap.String("addr", cfg.ServerAddr()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zapLog.Fatal("server", zap.Error(err))
	}
}
