package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/sportbet/sportbet-api/config"
	"github.com/sportbet/sportbet-api/db"
	"github.com/sportbet/sportbet-api/handlers"
	"github.com/sportbet/sportbet-api/live"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/repositories"
	api "github.com/sportbet/sportbet-api/routes"
	"github.com/sportbet/sportbet-api/services"
	"github.com/sportbet/sportbet-api/storage"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Хранилище эмблем (Cloudflare R2) опционально: без него сервис
	// работает, но загрузка эмблем отвечает 503.
	var emblemUploader storage.FileUploader
	if cfg.EmblemStorageConfigured() {
		emblemUploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("emblem storage not configured, uploads disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	memberRepo := repositories.NewPostgresMemberRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	betRepo := repositories.NewPostgresBetRepository(dbConn)
	apiKeyRepo := repositories.NewPostgresAPIKeyRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	authService := services.NewAuthService(apiKeyRepo)
	eventService := services.NewEventService(eventRepo, emblemUploader)
	memberService := services.NewMemberService(memberRepo)
	betStatusService := services.NewBetStatusService(memberRepo, gameRepo, betRepo)
	gameService := services.NewGameService(gameRepo, betStatusService, wsHub, logger)
	betService := services.NewBetService(betRepo, gameRepo)
	logger.Info("Services initialized")

	staticRoot := os.Getenv("STATIC_DIR")
	if staticRoot == "" {
		staticRoot = "static"
	}

	// Инициализация обработчиков HTTP
	h := api.Handlers{
		Event:     handlers.NewEventHandler(eventService),
		Member:    handlers.NewMemberHandler(memberService),
		Game:      handlers.NewGameHandler(gameService),
		Bet:       handlers.NewBetHandler(betService),
		BetStatus: handlers.NewBetStatusHandler(betStatusService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, eventService),
		Static:    handlers.NewStaticHandler(staticRoot),
	}
	resolver := middleware.NewResolver(eventService, memberService, gameService)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, authService, resolver, h)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
