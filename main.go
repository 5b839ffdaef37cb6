package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"property-pilot/config"
	httpLayer "property-pilot/http"
	"property-pilot/repository"
	"property-pilot/service"
)

func main() {
	cfg := config.LoadConfig()

	cache := newCache(cfg)

	calculatorService := service.NewCalculatorService(cache)
	calculatorHandler := httpLayer.NewCalculatorHandler(calculatorService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(calculatorHandler, rateLimiter, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server is running on port %s", cfg.Port)
		log.Println("   POST /api/calculate-closing-costs")
		log.Println("   POST /api/calculate-occupancy-costs")
		log.Println("   POST /api/calculate-mortgage")
		log.Println("   POST /api/calculate-rental-roi")
		log.Println("   GET  /api/health")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache uses Redis when REDIS_ADDR is set and reachable, otherwise an
// in-memory cache.
func newCache(cfg *config.Config) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		log.Printf("REDIS_ADDR not set, caching up to %d results in memory", cfg.MemoryCacheMaxEntries)
		return repository.NewMemoryCache(cfg.CacheTTL, cfg.MemoryCacheMaxEntries)
	}

	cache := repository.NewRedisCache(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unreachable (%v), caching results in memory", cfg.RedisAddr, err)
		cache.Close()
		return repository.NewMemoryCache(cfg.CacheTTL, cfg.MemoryCacheMaxEntries)
	}

	log.Printf("Connected to Redis at %s", cfg.RedisAddr)
	return cache
}
