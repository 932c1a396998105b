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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	riverlib "github.com/riverqueue/river"
	"github.com/spf13/cobra"

	"github.com/ethanwang/hookpulse/internal/apperror"
	"github.com/ethanwang/hookpulse/internal/config"
	"github.com/ethanwang/hookpulse/internal/delivery"
	riversetup "github.com/ethanwang/hookpulse/internal/river"
	"github.com/ethanwang/hookpulse/internal/webhook"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hookpulse",
		Short: "Authenticated GitHub webhook receiver",
	}

	var port string
	var secret string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if secret != "" {
				cfg.WebhookSecret = secret
			}
			return serve(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().StringVar(&port, "port", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&secret, "secret", "", "Webhook secret (overrides GITHUB_WEBHOOK_SECRET)")
	rootCmd.AddCommand(serveCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("hookpulse failed", "error", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if cfg.WebhookSecret == "" {
		slog.Warn("no webhook secret configured - signatures will not be verified")
	} else {
		slog.Info("webhook signature verification enabled")
	}

	// Delivery recording is optional: without a database the pipeline runs
	// with a no-op recorder and the deliveries API is not mounted.
	var recorder webhook.Recorder = delivery.NoopRecorder{}
	var store *delivery.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			return err
		}
		slog.Info("database connected")

		store = delivery.NewStore(pool)

		workers := riverlib.NewWorkers()
		riverlib.AddWorker(workers, delivery.NewRecordWorker(store))

		riverClient, err := riversetup.NewClient(pool, workers)
		if err != nil {
			return err
		}
		if err := riverClient.Start(ctx); err != nil {
			return err
		}
		defer riverClient.Stop(context.Background()) //nolint:errcheck
		slog.Info("river started")

		recorder = delivery.NewEnqueuer(riverClient)
	}

	dispatcher := webhook.NewDispatcher(slog.Default())
	webhookSvc := webhook.NewService([]byte(cfg.WebhookSecret), dispatcher, recorder, slog.Default())
	webhookHandler := webhook.NewHandler(webhookSvc)

	e := echo.New()
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = apperror.ErrorHandler()

	e.GET("/", infoHandler)
	e.GET("/health", healthHandler)
	webhookHandler.RegisterRoutes(e)

	if store != nil {
		api := e.Group("/api")
		delivery.NewHandler(delivery.NewService(store)).RegisterRoutes(api)
	}

	slog.Info("starting server", "port", cfg.Port)
	sc := echo.StartConfig{
		Address:         ":" + cfg.Port,
		GracefulTimeout: 5 * time.Second,
	}
	if err := sc.Start(ctx, e); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":        "healthy",
		"service":       "hookpulse",
		"version":       version,
		"authenticated": c.QueryParam("token") != "",
	})
}

func infoHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "hookpulse",
		"endpoints": map[string]string{
			"webhook":    "/webhook",
			"health":     "/health",
			"info":       "/",
			"deliveries": "/api/deliveries",
		},
		"supported_events": webhook.RecognizedKinds(),
	})
}
