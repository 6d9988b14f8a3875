package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/doctext"
	"github.com/medparse/bloodlab/internal/export"
	"github.com/medparse/bloodlab/internal/extract"
	"github.com/medparse/bloodlab/internal/llm/openai"
	"github.com/medparse/bloodlab/internal/repository"
	"github.com/medparse/bloodlab/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session bookkeeping is optional, the server runs stateless when no
	// DB_URL is configured.
	var sessions repository.SessionRepository
	if cfg.Database.DSN != "" {
		pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repository.Close(pool, logger)

		if err := repository.HealthCheck(ctx, pool, 5*time.Second); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		if err := repository.Migrate(ctx, pool, logger); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		sessions = repository.NewSessionRepository(pool, logger)
	} else {
		logger.Warn("DB_URL is empty, session persistence disabled")
	}

	completer := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	recognizer := doctext.NewClient(doctext.Config{
		BaseURL:  cfg.DocText.BaseURL,
		Language: cfg.DocText.Language,
		Timeout:  cfg.DocText.Timeout,
	}, logger)

	orch := extract.NewOrchestrator(completer, cfg.LLM.Timeout, logger)
	service := server.NewService(recognizer, orch, sessions, logger)
	exporter := export.NewService(logger)

	srv := server.New(cfg.Server, service, exporter, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
