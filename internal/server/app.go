// Package server assembles the portal backend: configuration, database,
// redis, object storage and the REST surface, plus graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/logging"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/config"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/httpapi"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/repomanager"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/services"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	rm     repomanager.RepositoryManager
	srv    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN, repomanager.Pool{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn(ctx, "redis unreachable, falling back to in-memory rate limiting", "err", err)
			redisClient = nil
		}
	}

	us := services.NewUserService(rm, cfg)
	ps := services.NewProfileService(rm)
	as := services.NewAttendanceService(rm)
	cs := services.NewContentService(rm)
	uploads := storage.NewUploadService(cfg)

	healthy := func(ctx context.Context) bool {
		return rm.Conn().PingContext(ctx) == nil
	}

	srv := httpapi.NewServer(cfg, logger, us, ps, as, cs, uploads, redisClient, healthy)

	return &App{config: cfg, logger: logger, rm: rm, srv: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "env", app.config.Env)

	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.rm.Close(); err != nil {
			app.logger.Warn(ctx, "db close error", "err", err)
		}
	}()

	return app.srv.Run(ctx)
}
