package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-amortizer/config"
	httpLayer "loan-amortizer/http"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := config.NewLogger(cfg.LogLevel)

	planRepo, closeRepo, err := openPlanRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	cache, closeCache, err := openCache(cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	schedules := service.NewScheduleService(cache, cfg.CacheTTL, log)
	comparisons := service.NewComparisonService(schedules)
	plans := service.NewPlanService(planRepo, schedules, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(
		httpLayer.NewScheduleHandler(schedules, comparisons, log),
		httpLayer.NewPlanHandler(plans, log),
		rateLimiter,
		log,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("API listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	log.Info("Server exited")
	return nil
}

func openPlanRepository(cfg *config.Config) (repository.PlanRepository, func(), error) {
	if cfg.StoreBackend != "sqlite" {
		return repository.NewPlanRepositoryMemory(), func() {}, nil
	}

	repo, err := repository.NewSQLitePlanRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { _ = repo.Close() }, nil
}

func openCache(cfg *config.Config, log *logrus.Logger) (repository.CacheRepository, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("Using in-process schedule cache")
		return repository.NewMemoryCache(), func() {}, nil
	}

	cache := repository.NewRedisCache(cfg.RedisAddr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, err
	}

	log.Infof("Using redis schedule cache at %s", cfg.RedisAddr)
	return cache, func() { _ = cache.Close() }, nil
}
