package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistrar/adapters/myredis"
	"myregistrar/handlers"
	"myregistrar/interfaces"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyRegistrar service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"redis_addr", config.Redis.Addr,
		"registry_hash", config.Redis.Hash,
		"heartbeat_schedule", config.Schedule.Heartbeat,
		"sweep_schedule", config.Schedule.Sweep,
		"staleness_threshold", config.Registrar.StalenessThreshold,
		"store_timeout", config.Registrar.StoreTimeout,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := service.NewMetrics(registry, "myregistrar")
	if err != nil {
		level.Error(logger).Log("msg", "Failed to register metrics", "err", err)
		os.Exit(1)
	}

	var store interfaces.RegistryStore
	{
		redisClient, err := myredis.NewRedisUniversalClient(
			config.Redis.Addr,
			myredis.WithTimeouts(config.Registrar.StoreTimeout),
		)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		// Unreachable Redis is not fatal: registration and heartbeats log and retry on schedule.
		ctx, cancel := context.WithTimeout(context.Background(), config.Registrar.StoreTimeout)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Warn(logger).Log("msg", "Redis is not reachable yet", "err", err)
		} else {
			level.Info(logger).Log("msg", "Connected to Redis")
		}
		cancel()

		store = myredis.NewRegistryStore(redisClient, config.Redis.Hash, logger)
	}

	var scheduler *service.Scheduler
	{
		clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
		registrar := service.NewRegistrar(
			service.NewUUIDGenerator(),
			store,
			clock,
			config.Registrar,
			metrics,
			logger,
		)
		scheduler, err = service.NewScheduler(registrar, config.Schedule, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create scheduler", "err", err)
			os.Exit(1)
		}
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(registry, logger))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	scheduler.Start(context.Background())

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// The registry entry is left in place; a surviving instance's sweep removes it.
	if err := scheduler.Stop(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during scheduler shutdown", "err", err)
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
