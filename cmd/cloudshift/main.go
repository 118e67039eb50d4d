// CloudShift migration engine — drains the job queue and runs the
// multi-phase Kubernetes-to-AKS migration pipeline for each message.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/cleanup"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/database"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
	"github.com/cloudshift-ai/cloudshift/pkg/observer"
	"github.com/cloudshift-ai/cloudshift/pkg/phases"
	"github.com/cloudshift-ai/cloudshift/pkg/process"
	"github.com/cloudshift-ai/cloudshift/pkg/queue"
	"github.com/cloudshift-ai/cloudshift/pkg/telemetry"
	"github.com/cloudshift-ai/cloudshift/pkg/version"
)

// Exit codes: 0 graceful stop, 1 initialization failure, 130 interrupted.
const (
	exitOK          = 0
	exitInitFailure = 1
	exitInterrupted = 130
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// setupLogging configures the default slog logger from LOG_LEVEL.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	setupLogging()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting CloudShift",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitInitFailure
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return exitInitFailure
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitInitFailure
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Telemetry store and model client
	store := telemetry.NewStore(dbClient.Client)
	modelClient := llm.NewClient(cfg.Model)

	// 4. Phase pipeline and process state machine
	steps := process.NewPipeline(phases.Dependencies{
		Config:      cfg,
		Telemetry:   store,
		LLM:         modelClient,
		Observers:   []agent.Observer{observer.NewActivity(store), observer.New(store)},
		Concurrency: cfg.Dispatcher.WorkerCount,
	})
	machine, err := process.New(store, steps)
	if err != nil {
		slog.Error("Failed to build process state machine", "error", err)
		return exitInitFailure
	}

	// 5. Start worker pool (sweeps stale leases, then begins polling)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Dispatcher, machine, store)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		return exitInitFailure
	}

	// 6. Start retention sweep
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client, cfg.Dispatcher.DeadLetterQueue())
	cleanupService.Start(ctx)

	slog.Info("CloudShift started successfully",
		"pod_id", podID,
		"queue", cfg.Dispatcher.QueueName,
		"workers", cfg.Dispatcher.WorkerCount)

	// 7. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 8. Graceful shutdown: stop taking work, let in-flight jobs finish up
	// to the configured budget. Leases of jobs still running at the deadline
	// expire on their own and the messages are redelivered.
	cleanupService.Stop()
	workerPool.Stop()

	slog.Info("Shutdown complete")
	if sig == syscall.SIGINT {
		return exitInterrupted
	}
	return exitOK
}
