package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rickgao/congress-data/internal/api"
	"github.com/rickgao/congress-data/internal/config"
	"github.com/rickgao/congress-data/internal/report"
	"github.com/rickgao/congress-data/internal/store"
	"github.com/rickgao/congress-data/internal/tracker"
	"github.com/rickgao/congress-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/tracker.yaml", "path to config file")
	days := flag.Int("days", 0, "lookback window in days (0 = use config)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting tracker",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Optional .env next to the binary; config env substitution reads it.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	daysBack := cfg.Tracker.DaysBack
	if *days > 0 {
		daysBack = *days
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"storage_driver", cfg.Storage.Driver,
		"days_back", daysBack,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	st, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Init(ctx); err != nil {
		logger.Error("failed to initialize store schema", "error", err)
		os.Exit(1)
	}

	client := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.Key,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
	)

	tr := tracker.New(tracker.Config{APIKey: cfg.API.Key}, client, st, logger)
	summary := tr.Run(ctx, daysBack)

	gen := report.NewGenerator(st, cfg.Tracker.AlertThreshold, logger)
	body := gen.Render(ctx, summary)

	if err := report.WriteFile(cfg.Report.OutputPath, body); err != nil {
		logger.Error("failed to write report", "path", cfg.Report.OutputPath, "error", err)
	} else {
		logger.Info("report written", "path", cfg.Report.OutputPath, "recipient", cfg.Report.Recipient)
	}

	fmt.Println(body)

	if summary.HasError() {
		os.Exit(1)
	}
}
