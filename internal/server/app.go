// Package server initializes and runs the API server.
// It opens the store, runs migrations, wires the services and serves HTTP
// and gRPC until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joseotaviopc/api-ari/internal/dbx"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/config"
	"github.com/joseotaviopc/api-ari/internal/server/httpapi"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/memory"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/repomanager"
	"github.com/joseotaviopc/api-ari/internal/server/revocation"
	"github.com/joseotaviopc/api-ari/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	gs "github.com/joseotaviopc/api-ari/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	closers []io.Closer
	http    *httpapi.Server
	grpc    *gs.GRPCServer
}

// sqlPinger adapts *sql.DB to the Ping(ctx) shape health checks use.
type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogLevel, c.LogFormat, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	app := &App{config: c, logger: logger}

	var (
		db    *gorm.DB
		repos repomanager.RepositoryManager
		probe gs.Pinger
	)
	health := map[string]httpapi.Pinger{}

	if c.UsesMemoryStore() {
		logger.Warn(ctx, "using in-memory store, data is lost on exit")
		repos = memory.NewManager()
	} else {
		db, err = dbx.Open(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.closers = append(app.closers, sqlDB)

		repos = repomanager.NewPostgresRepositoryManager()
		if c.AutoMigrate {
			if err := repos.RunMigrations(ctx, sqlDB); err != nil {
				app.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
			logger.Info(ctx, "migrations applied")
		}
		probe = sqlPinger{db: sqlDB}
		health["database"] = probe
	}

	// Interfaces stay nil without Redis so logout is disabled.
	var (
		revoker services.Revoker
		checker auth.RevocationChecker
	)
	if c.RedisAddr != "" {
		client, err := revocation.NewClient(ctx, c.RedisAddr, c.RedisPassword)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		app.closers = append(app.closers, client)
		store := revocation.NewRedisStore(client)
		revoker, checker = store, store
		health["redis"] = store
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	tokens := auth.NewTokenIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	guard := auth.NewGuard(tokens, repos.Users(db), checker)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := httpapi.NewMetrics(registry)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:           services.NewAuthService(db, repos, hasher, tokens, revoker, c.DefaultBaseID, logger),
		Users:          services.NewUserService(db, repos, hasher, c.DefaultBaseID, logger),
		Clientes:       services.NewClienteService(db, repos, logger),
		Bases:          services.NewBaseService(db, repos, logger),
		Guard:          guard,
		Health:         health,
		Metrics:        metrics,
		Gatherer:       registry,
		AllowedOrigins: c.AllowedOrigins,
		SwaggerHost:    c.SwaggerHost,
		Log:            logger,
	})

	app.http = httpapi.NewServer(c.EndpointAddrHTTP, router, logger)
	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, guard, probe)
	return app, nil
}

// Close releases the database pool and the Redis client.
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		errs = append(errs, app.closers[i].Close())
	}
	app.closers = nil
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or
// either server fails. The first server error is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	serve := func(name string, run func(context.Context) error) {
		defer wg.Done()
		if err := run(ctx); err != nil {
			app.logger.Error(ctx, "server failed", "server", name, "error", err)
			errOnce.Do(func() { firstErr = err })
			cancelFunc()
		}
	}

	wg.Add(2)
	go serve("http", app.http.Run)
	go serve("grpc", app.grpc.Run)
	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	return firstErr
}
