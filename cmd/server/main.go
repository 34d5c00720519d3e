package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"oldenfyre/internal/catalog"
	"oldenfyre/internal/checkout"
	"oldenfyre/internal/config"
	"oldenfyre/internal/infrastructure/logger"
	"oldenfyre/internal/infrastructure/mysql"
	"oldenfyre/internal/preferences"
	"oldenfyre/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	catalogCtrl, catalogRepo := catalog.NewModule(zapLogger)
	checkoutCtrl := checkout.NewModule(db, catalogRepo, cfg, zapLogger)
	preferencesCtrl := preferences.NewController(preferences.NewThemeStore(), zapLogger)

	router := server.NewRouter(catalogCtrl, checkoutCtrl, preferencesCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
