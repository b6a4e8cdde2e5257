package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmacy-fulfillment/internal/platform/config"
	"pharmacy-fulfillment/internal/platform/logger"
	"pharmacy-fulfillment/internal/router"

	"github.com/joho/godotenv"
)

// @title Pharmacy Fulfillment API
// @version 1.0
// @description Solicitudes de medicamentos con cuota de turnos por paciente y decisiones de farmacéutico.
// @BasePath /
func main() {
	// .env es opcional (dev local)
	_ = godotenv.Load()

	cfg, err := config.Load("./config")
	if err != nil {
		logger.New(logger.Options{}).Error("load config", logger.Fields{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	if cfg.Auth.DevMode {
		log.Warn("dev mode enabled: X-Debug-User-ID header is trusted", nil)
	}

	r, err := router.NewRouter(router.Options{Config: cfg, Logger: log})
	if err != nil {
		log.Error("build router", logger.Fields{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", logger.Fields{"err": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", logger.Fields{"err": err.Error()})
	}
	log.Info("server stopped", nil)
}
