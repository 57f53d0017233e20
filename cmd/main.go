package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/serenoapp/server/adapters/llm"
	"github.com/serenoapp/server/adapters/storage"
	"github.com/serenoapp/server/adapters/tts"
	"github.com/serenoapp/server/internal/api"
	"github.com/serenoapp/server/internal/config"
	"github.com/serenoapp/server/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Initialize adapters
	generator, err := llm.NewTextGenerator(ctx, llm.Config{
		Provider: cfg.TextProvider,
		OpenAI: llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		},
		Gemini: llm.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		},
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize text generator", zap.Error(err))
	}

	synthesizer, err := tts.NewElevenLabs(tts.ElevenLabsConfig{
		APIKey:     cfg.ElevenLabsAPIKey,
		APIBaseURL: cfg.ElevenLabsBaseURL,
		ModelID:    cfg.ElevenLabsModelID,
		Stability:  cfg.ElevenLabsStability,
		Clarity:    cfg.ElevenLabsClarity,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech synthesizer", zap.Error(err))
	}

	store, err := storage.NewLocalStore(cfg.UploadDir, "/uploads", logger)
	if err != nil {
		logger.Fatal("Failed to initialize audio store", zap.Error(err))
	}

	// Initialize usecase services
	synthesis := usecase.NewSynthesisService(synthesizer, store, logger)
	voices := usecase.NewVoiceCatalog(synthesizer, logger)
	meditation := usecase.NewMeditationService(generator, synthesis, voices, logger)
	visualization := usecase.NewVisualizationService(generator, synthesis, voices, logger)
	oneTap := usecase.NewOneTapService(synthesis, logger)
	audio := usecase.NewAudioService(synthesizer, store, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.AllowedOrigins, ","),
	}))

	// Generated audio is served directly from the upload directory.
	e.Static("/uploads", cfg.UploadDir)

	handler := api.NewHandler(meditation, visualization, oneTap, audio, logger)
	api.InitRoutes(e, handler)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("textProvider", cfg.TextProvider))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
