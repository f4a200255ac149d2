package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autozonepro/internal/config"
	"autozonepro/internal/logger"
	"autozonepro/internal/service/courier"
	"autozonepro/internal/service/performance"
	"autozonepro/internal/storage/memory"
	"autozonepro/internal/storage/mysql"
)

// Storage: всё, что нужно обоим сервисам от хранилища.
type Storage interface {
	courier.Storage
	performance.Storage
}

func openStorage(ctx context.Context, cfg *config.Config) (Storage, func(), error) {
	if cfg.StorageDriver == config.DriverMemory {
		return memory.New(), func() {}, nil
	}

	st, err := mysql.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	return st, func() { _ = st.Close() }, nil
}

func main() {
	cfg := config.MustConfig()

	log := logger.Setup(cfg.Env, cfg.ErrorLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	courierService := courier.NewService(log, storage)
	performanceService := performance.NewService(log, storage)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, courierService, performanceService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to stop server", slog.String("error", err.Error()))
		}
	}()

	log.Info("server started", slog.String("address", cfg.Address), slog.String("storage", cfg.StorageDriver))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed start server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}
