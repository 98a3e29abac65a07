package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/rangepicker/internal/api"
	"github.com/terraincognita07/rangepicker/internal/cli"
	"github.com/terraincognita07/rangepicker/internal/config"
	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "print" {
		if err := cli.RunPrintCommand(os.Args[2:], os.Stdout, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "print failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		slog.Error("rangepicker exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(getEnv("CONFIG_PATH", config.DefaultConfigPath), os.Getenv)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(appLogger)

	secretKey, err := resolveSecretKey(cfg.Server.SecretKey)
	if err != nil {
		return err
	}
	port, err := resolvePort(cfg.Server.Port)
	if err != nil {
		return err
	}
	if _, err := cfg.DefaultHorizon(models.DateFromTime(time.Now())); err != nil {
		return fmt.Errorf("default horizon: %w", err)
	}

	database, err := db.OpenSQLite(cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	sessions := services.NewSessionStore(cfg.Sessions.TTL, cfg.Sessions.MaxSessions)
	handler, err := api.NewHandler(database, secretKey, sessions, api.HandlerOptions{
		DefaultPanes:       cfg.Defaults.Panes,
		DefaultHorizon:     cfg.DefaultHorizon,
		ReportIntermediate: cfg.ReportIntermediateEnabled(),
		Logger:             appLogger,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "rangepicker",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	janitor := services.NewSessionJanitor(sessions, cfg.Sessions.SweepSchedule, appLogger)
	if err := janitor.Start(sigCtx); err != nil {
		return err
	}

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", "error", err)
		}
	}()

	appLogger.Info("rangepicker listening", "addr", "0.0.0.0:"+port, "db", cfg.Server.DBPath, "session_ttl", cfg.Sessions.TTL.String())
	return app.Listen(":" + port)
}

func resolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[secret]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(value), nil
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
