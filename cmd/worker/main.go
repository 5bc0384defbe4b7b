package main

import (
	"context"
	stderrors "errors"
	"os/signal"
	"syscall"
	"time"

	"media-uploader/internal/infrastructure/cloud"
	"media-uploader/internal/infrastructure/queue"
	"media-uploader/internal/infrastructure/storage"
	"media-uploader/internal/pkg/config"
	"media-uploader/internal/pkg/logger"
	"media-uploader/internal/usecases"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Server.LogLevel, cfg.Server.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if !cfg.QueueEnabled() {
		log.Fatal("REDIS_ADDR is required for the worker")
	}
	if err := config.EnsureDirs(cfg); err != nil {
		log.Fatal("could not provision media directories", zap.Error(err))
	}
	creds := config.ResolveCredentials(cfg.Cloudinary, log)

	mediaService := usecases.NewMediaService(
		cloud.NewClient(creds, cfg.Provider, log),
		storage.NewLocalStorage(cfg.Media.Root, cfg.Media.DecodeDimensions, log),
		log,
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	q := queue.NewRedisQueue(rdb, cfg.Redis.JobQueue, cfg.Redis.ResultQueue)

	publish := func(res queue.ProcessedJob) {
		if err := q.PublishResult(context.Background(), res); err != nil {
			log.Error("could not publish result", zap.String("job_id", res.JobID), zap.Error(err))
		}
	}
	pool := queue.NewWorkerPool(cfg.Redis.WorkerCount, queue.NewMediaJobHandler(mediaService, log), publish, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log.Info("worker started", zap.Int("workers", cfg.Redis.WorkerCount), zap.String("queue", cfg.Redis.JobQueue))

	// BRPOP loop feeding the pool
	for ctx.Err() == nil {
		job, err := q.Dequeue(ctx, 5*time.Second)
		if stderrors.Is(err, queue.ErrEmpty) || ctx.Err() != nil {
			continue
		}
		if err != nil {
			log.Warn("BRPOP failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		pool.AddJob(*job)
	}

	log.Info("shutdown signal received, draining jobs")
	pool.Shutdown()
	log.Info("worker stopped")
}
