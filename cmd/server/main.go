package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"medicare-gateway/internal/backend"
	"medicare-gateway/internal/cart"
	"medicare-gateway/internal/config"
	"medicare-gateway/internal/httpserver"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[gateway] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, logger)

	var sessionCache backend.SessionCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		sessionCache = backend.NewRedisSessionCache(rdb, logger)
		logger.Printf("session cache enabled on %s", cfg.RedisAddr)
	}

	deps := httpserver.Deps{
		Products:   backend.NewProductClient(client),
		Categories: backend.NewCategoryClient(client),
		Orders:     backend.NewOrderClient(client),
		Users:      backend.NewUserClient(client, sessionCache),
		Carts:      cart.NewRegistry(),
		Pinger:     client,
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, deps, httpserver.Options{
		CartCookie:           cfg.CartCookie,
		CORSOrigins:          cfg.CORSOrigins,
		SessionLookupTimeout: cfg.SessionLookupTimeout,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
