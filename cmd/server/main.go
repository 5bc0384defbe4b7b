package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "media-uploader/docs"

	"media-uploader/internal/delivery/http/handlers"
	"media-uploader/internal/delivery/http/routers"
	"media-uploader/internal/domain/repositories"
	"media-uploader/internal/infrastructure/cloud"
	"media-uploader/internal/infrastructure/db"
	"media-uploader/internal/infrastructure/queue"
	infra_repo "media-uploader/internal/infrastructure/repositories"
	"media-uploader/internal/infrastructure/storage"
	"media-uploader/internal/pkg/config"
	"media-uploader/internal/pkg/logger"
	"media-uploader/internal/usecases"
	consts "media-uploader/pkg/constants"
	"media-uploader/pkg/errors/i18n"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// @title        Pet Marketplace Media API
// @version      1.0
// @description  Media ingestion with remote upload strategies and a local fallback store.
// @BasePath     /api/v1
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

	if err := i18n.Load(cfg.Server.Locale); err != nil {
		log.Warn("i18n catalog not loaded, falling back to default messages", zap.Error(err))
	}
	if err := config.EnsureDirs(cfg); err != nil {
		log.Fatal("could not provision media directories", zap.Error(err))
	}
	creds := config.ResolveCredentials(cfg.Cloudinary, log)

	mediaRepo := newMediaRepository(cfg, log)

	mediaService := usecases.NewMediaService(
		cloud.NewClient(creds, cfg.Provider, log),
		storage.NewLocalStorage(cfg.Media.Root, cfg.Media.DecodeDimensions, log),
		log,
	)
	recordService := usecases.NewRecordService(mediaService, mediaRepo, log)

	var (
		jobs handlers.JobQueue
		rdb  *redis.Client
	)
	if cfg.QueueEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		jobs = queue.NewRedisQueue(rdb, cfg.Redis.JobQueue, cfg.Redis.ResultQueue)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.BodyLimit,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.Media.Root)

	routers.SetupMediaRoutes(app, handlers.NewMediaHandler(recordService, jobs, cfg.Media.StagingDir, log))

	cleanupHandler := handlers.NewCleanupHandler(usecases.NewCleanupService(cfg.Media.StagingDir, log), cfg.Media.StagingMaxAge, log)
	scheduler, err := routers.SetupCleanupRoutes(app, cleanupHandler, cfg.Media.CleanupSchedule)
	if err != nil {
		log.Fatal("could not schedule staging cleanup", zap.Error(err))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	listenerCtx, stopListener := context.WithCancel(context.Background())
	if rdb != nil {
		go startResultListener(listenerCtx, queue.NewRedisQueue(rdb, cfg.Redis.JobQueue, cfg.Redis.ResultQueue), recordService, log)
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("credentials", creds.Source))
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatal("server could not start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	stopListener()
	<-scheduler.Stop().Done()

	ctxShut, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Error("server did not shut down cleanly", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info("server stopped")
}

func newMediaRepository(cfg *config.Config, log *zap.Logger) repositories.MediaRepository {
	dsn := cfg.DSN()
	if dsn == "" {
		log.Info("DB_HOST not set, keeping media records in memory")
		return infra_repo.NewInMemoryMediaRepository()
	}

	database, err := db.NewPostgresDB(dsn, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if cfg.Database.AutoMigration {
		if err := db.Migrate(context.Background(), database); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
		log.Info("migrations applied")
	}
	return infra_repo.NewMediaRepository(database)
}

// startResultListener persists what the worker produced.
func startResultListener(ctx context.Context, q *queue.RedisQueue, records usecases.RecordService, log *zap.Logger) {
	log = log.Named("result-listener")
	for {
		res, err := q.NextResult(ctx, 5*time.Second)
		if ctx.Err() != nil {
			return
		}
		if stderrors.Is(err, queue.ErrEmpty) {
			continue
		}
		if err != nil {
			log.Warn("reading results failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		if res.Status != consts.StatusCompleted {
			log.Warn("job failed", zap.String("job_id", res.JobID), zap.String("code", res.ErrorCode))
			continue
		}
		switch {
		case res.Type == queue.JobUpload && res.Media != nil:
			if err := records.Save(ctx, res.Media); err != nil {
				log.Error("could not persist queued upload", zap.String("job_id", res.JobID), zap.Error(err))
				continue
			}
			log.Info("queued upload persisted", zap.String("job_id", res.JobID), zap.String("public_id", res.Media.PublicID))
		case res.Type == queue.JobDelete && res.Deleted:
			if err := records.Forget(ctx, res.PublicID); err != nil {
				log.Error("could not remove deleted record", zap.String("public_id", res.PublicID), zap.Error(err))
			}
		}
	}
}
