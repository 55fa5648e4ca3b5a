package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/api"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/classifier"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/config"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/huggy"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/notify"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/pipeline"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/report"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	runID := uuid.New()
	logger := slog.Default().With("run_id", runID.String())

	logger.Info("huggy sentiment export starting",
		"model", cfg.OpenAIModel,
		"max_pages", cfg.MaxPages,
		"report", cfg.ReportPath,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := huggy.NewClient(huggy.ClientConfig{
		Token:            cfg.HuggyAPIKey,
		BaseURL:          cfg.HuggyBaseURL,
		ChatPageDelay:    cfg.ChatPageDelay,
		MessagePageDelay: cfg.MessagePageDelay,
		MaxPages:         cfg.MaxPages,
	}, logger)

	cls := classifier.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)

	sinks := []report.Sink{report.NewCSVSink(cfg.ReportPath, logger)}

	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL, runID)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare database schema", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, db)
		logger.Info("database sink ready")
	}

	var notifier pipeline.Notifier
	if cfg.NatsURL != "" {
		n, err := notify.New(cfg.NatsURL, cfg.NatsToken, logger)
		if err != nil {
			logger.Warn("nats unavailable, continuing without notifier", "error", err)
		} else {
			defer n.Close()
			notifier = n
			logger.Info("notifier ready", "url", cfg.NatsURL)
		}
	}

	progress := pipeline.NewProgress(runID.String())

	if cfg.StatusPort > 0 {
		srv := api.NewServer(cfg.StatusPort, progress)
		go func() {
			if err := srv.Start(); err != nil {
				logger.Error("status server error", "error", err)
			}
		}()
	}

	runner := pipeline.NewRunner(source, cls, sinks, notifier, progress, pipeline.Config{
		ChatPause:     cfg.ChatPause,
		BotNameMarker: cfg.BotNameMarker,
	}, logger)

	summary := runner.Run(ctx)

	summary.Print(os.Stdout)
	logger.Info("analysis complete, report generated",
		"rows", summary.RowsWritten,
		"chats", summary.ChatsProcessed,
		"report", cfg.ReportPath,
	)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
