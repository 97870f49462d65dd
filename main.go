package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rebirthstudio/portfolio-backend/config"
	"github.com/rebirthstudio/portfolio-backend/handlers"
	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/rebirthstudio/portfolio-backend/router"
	"github.com/rebirthstudio/portfolio-backend/services"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(&cfg.Email)
	healthService := services.NewHealthService(emailService, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		ContactHandler: handlers.NewContactHandler(emailService),
		HealthHandler:  handlers.NewHealthHandler(healthService),
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("Received signal, shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shut down", "error", err)
		return
	}
	log.Info("Server stopped")
}
