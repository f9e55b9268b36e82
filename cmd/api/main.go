package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-playdate-matcher/internal/adapters/candidates/directory"
	"dog-playdate-matcher/internal/adapters/candidates/generated"
	pg "dog-playdate-matcher/internal/adapters/candidates/postgres"
	"dog-playdate-matcher/internal/config"
	"dog-playdate-matcher/internal/domain/matching"
	"dog-playdate-matcher/internal/platform/httpclient"
	"dog-playdate-matcher/internal/platform/logger"
	"dog-playdate-matcher/internal/router"
)

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs

// @title        Dog Playdate Matcher API
// @version      1.0
// @description  API for matching dog owners for playdates based on location, availability and dog compatibility
// @BasePath     /
func main() {
	configPath := flag.String("config", "", "optional config file (yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if zl, ok := lg.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generated.New(cfg.Candidates.Seed)

	var source matching.CandidateSource
	switch cfg.Candidates.Source {
	case config.SourcePostgres:
		db, err := pg.Open(ctx, cfg.DB.DSN)
		if err != nil {
			lg.Error("failed to open postgres", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()
		source = pg.NewOwnersSource(db, cfg.DB.MaxCandidates, lg)
	case config.SourceDirectory:
		client, err := httpclient.New(cfg.Directory.URL, cfg.Directory.Timeout)
		if err != nil {
			lg.Error("invalid directory url", map[string]any{"error": err})
			os.Exit(1)
		}
		source = directory.NewSource(client, lg)
	default:
		source = generated.NewSource(gen, cfg.Candidates.PoolSize)
	}

	handler := router.NewRouter(router.Options{
		Logger:     lg,
		Source:     source,
		SourceName: cfg.Candidates.Source,
		Generator:  gen,
		Match: matching.Options{
			MaxDistance: cfg.Match.MaxDistanceKm,
			MaxResults:  cfg.Match.MaxResults,
			Workers:     cfg.Match.ScoreWorkers,
		},
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		lg.Info("shutdown signal received", nil)

		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			lg.Warn("graceful shutdown completed with error", map[string]any{"error": err})
		}
	}()

	lg.Info("starting server", map[string]any{
		"addr":              srv.Addr,
		"candidates_source": cfg.Candidates.Source,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
	lg.Info("server stopped", nil)
}
