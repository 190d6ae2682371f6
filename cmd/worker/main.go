// Воркер очереди заданий. Делит таблицу jobs с HTTP-сервером через
// Postgres; масштабируется числом процессов, SKIP LOCKED исключает
// двойной захват.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/resumeq/pkg/config"
	"github.com/artem13815/resumeq/pkg/improve"
	"github.com/artem13815/resumeq/pkg/jobs"
	"github.com/artem13815/resumeq/pkg/llm/openrouter"
	pgrepo "github.com/artem13815/resumeq/pkg/repository/postgres"
	"github.com/artem13815/resumeq/pkg/storage/postgres"
	"github.com/artem13815/resumeq/pkg/tasks"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres connect", zap.Error(err))
	}
	defer pool.Close()

	store, err := pgrepo.NewJobRepository(pool)
	if err != nil {
		logger.Fatal("init job repo", zap.Error(err))
	}

	llmClient := openrouter.New(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBase,
		cfg.OpenRouterModel,
		cfg.OpenRouterAppTitle,
		cfg.OpenRouterReferer,
	)

	exec := jobs.NewExecutor(store, jobs.ExecutorConfig{
		Workers:      cfg.WorkerCount,
		PollInterval: cfg.PollInterval,
		JobTimeout:   cfg.JobTimeout,
		ResultTTL:    cfg.ResultTTL,
	}, logger)
	tasks.New(improve.New(llmClient), cfg.RenderOutputDir, logger).RegisterAll(exec)

	go exec.RunSweeper(ctx, time.Minute)

	logger.Info("worker started",
		zap.Int("workers", cfg.WorkerCount),
		zap.Duration("job_timeout", cfg.JobTimeout),
		zap.Duration("result_ttl", cfg.ResultTTL),
	)
	exec.Run(ctx)
	logger.Info("worker stopped")
}
