package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lanchonete-pedidos/internal/config"
	orderdb "lanchonete-pedidos/internal/orders/db"
	"lanchonete-pedidos/internal/orders/handler"
	"lanchonete-pedidos/internal/orders/service"
	"lanchonete-pedidos/pkg/db"
	"lanchonete-pedidos/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	port := flag.Int("port", 0, "Port to run the order service (overrides HTTP_PORT)")
	flag.Parse()

	log := logger.NewLogger("order-service")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("startup", "config_load_failed", "Invalid configuration", err)
		return err
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.ConnectDB(ctx, cfg, log)
	if err != nil {
		log.Error("startup", "db_connection_failed", "Failed to connect to PostgreSQL", err)
		return err
	}
	defer pool.Close()

	if err := db.Bootstrap(ctx, pool, log); err != nil {
		log.Error("startup", "db_bootstrap_failed", "Failed to create orders table", err)
		return err
	}

	repo := orderdb.NewOrderDB(pool, log)
	orderService := service.NewOrderService(repo, log)
	orderHandler := handler.NewOrderHandler(orderService, pool, log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: handler.NewRouter(orderHandler, log),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("startup", "server_started", fmt.Sprintf("Listening on %s", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown", "shutdown_signal_received", "Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "server_shutdown_failed", "Server failed to stop cleanly", err)
			return err
		}
		log.Info("shutdown", "server_stopped", "Server stopped")
		return nil
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("runtime", "server_failed", "Server failed unexpectedly", err)
			return err
		}
		return nil
	}
}
