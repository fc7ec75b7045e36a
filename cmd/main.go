package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/adapters/audio"
	"github.com/satriahrh/lingua/server/domain/entities"
	"github.com/satriahrh/lingua/server/domain/repositories"
	"github.com/satriahrh/lingua/server/internal/api"
	"github.com/satriahrh/lingua/server/internal/config"
	"github.com/satriahrh/lingua/server/internal/metrics"
	"github.com/satriahrh/lingua/server/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger depends on config, fall back to a production logger
		logger, _ := zap.NewProduction()
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.ScratchDir, 0755); err != nil {
		logger.Fatal("Failed to create scratch directory", zap.String("dir", cfg.ScratchDir), zap.Error(err))
	}

	// Initialize adapters
	p, err := newProviders(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize providers", zap.Error(err))
	}
	defer p.Close(logger)

	normalizer := audio.NewFFmpegNormalizer(audio.FFmpegConfig{
		FFmpegPath:  cfg.FFmpegPath,
		FFprobePath: cfg.FFprobePath,
	}, logger)

	// Initialize usecase services
	translatorService := usecase.NewTranslatorService(
		entities.NewDefaultLanguageRegistry(),
		p.speechToText,
		p.translator,
		p.textToSpeech,
		normalizer,
		usecase.TranslatorOptions{
			ScratchDir: cfg.ScratchDir,
			Voice: repositories.VoiceConfig{
				Gender:   cfg.VoiceGender,
				Encoding: cfg.VoiceEncoding,
			},
			UpstreamTimeout: cfg.UpstreamTimeout,
		},
		logger,
	)

	m := metrics.New()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler(logger)

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(api.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(m.Middleware())
	e.Use(middleware.BodyLimit(cfg.MaxUploadSize))

	// Initialize API routes
	api.InitRoutes(e, translatorService, logger)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Speech translator started",
		zap.String("port", cfg.Port),
		zap.String("scratchDir", cfg.ScratchDir))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
