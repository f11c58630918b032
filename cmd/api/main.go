package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gamecatalog/internal/adapter/api"
	"gamecatalog/internal/adapter/api/handler"
	"gamecatalog/internal/adapter/api/router"
	"gamecatalog/internal/infrastructure/ratelimit"
	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/config"
	"gamecatalog/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCloser := logger.Setup(logger.Options{
		Environment: cfg.Environment,
		File:        cfg.LogFile,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	})
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			logger.Warn("Failed to close %s store: %v", cfg.DBDriver, err)
		}
	}()

	mailer, err := newMailer(ctx, cfg)
	if err != nil {
		return err
	}

	uploader, closeUploader, err := newMediaUploader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeUploader()

	var notifier usecase.GameNotifier = usecase.NewNotificationUseCase(store.subscribers, mailer, cfg.SiteBaseURL)
	var asyncNotifier *usecase.AsyncNotifier
	if cfg.NotifyAsync {
		asyncNotifier = usecase.NewAsyncNotifier(notifier)
		notifier = asyncNotifier
	}

	handlers := handler.New(handler.Dependencies{
		GameUseCase:       usecase.NewGameUseCase(store.games, notifier),
		AdUseCase:         usecase.NewAdUseCase(store.ads),
		UserUseCase:       usecase.NewUserUseCase(store.users),
		SubscriberUseCase: usecase.NewSubscriberUseCase(store.subscribers),
		UploadUseCase:     usecase.NewUploadUseCase(uploader, cfg.MediaFolder, cfg.UploadTmpDir, cfg.MaxUploadBytes),
		SitemapUseCase:    usecase.NewSitemapUseCase(store.games, cfg.SiteBaseURL),
		StorePinger:       store.pinger,
	})

	limiter := ratelimit.NewLimiterStore(cfg.RateLimitPerMinute, cfg.RateLimitBurst, 5*time.Minute)
	defer limiter.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(logger.Writer())

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: logger.Writer()}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	e.Validator = api.NewValidator()

	router.Setup(e, handlers, limiter)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server on port %s (store: %s)...", cfg.ServerPort, cfg.DBDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server shutdown: %v", err)
	}
	if asyncNotifier != nil {
		if err := asyncNotifier.Wait(shutdownCtx); err != nil {
			logger.Warn("Pending notifications abandoned: %v", err)
		}
	}

	logger.Info("Server stopped")
	return nil
}
