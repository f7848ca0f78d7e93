package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/ticket-scoring/api/v1"
	"github.com/godilite/ticket-scoring/internal/config"
	handler "github.com/godilite/ticket-scoring/internal/grpc"
	"github.com/godilite/ticket-scoring/internal/migration"
	"github.com/godilite/ticket-scoring/internal/repository"
	"github.com/godilite/ticket-scoring/internal/service"
	"github.com/godilite/ticket-scoring/pkg/admin"
	"github.com/godilite/ticket-scoring/pkg/cache"
	dbbuilder "github.com/godilite/ticket-scoring/pkg/database"
	grpcsrv "github.com/godilite/ticket-scoring/pkg/grpc/server"
	"github.com/godilite/ticket-scoring/pkg/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const (
	serviceName     = "ticket-scoring"
	shutdownTimeout = 10 * time.Second
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

type cacheClient interface {
	handler.Cacher
	Ping(ctx context.Context) error
}

type App struct {
	logger         *zap.Logger
	dbPool         *sql.DB
	cache          cacheClient
	tracerProvider *sdktrace.TracerProvider
	grpcServer     *grpcsrv.Server
	adminServer    *admin.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *App, err error) {
	a := &App{logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	a.dbPool, err = dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
		dbbuilder.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	if cfg.DBAutoMigrate {
		if err = migration.Run(a.dbPool); err != nil {
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	if cfg.CacheEnabled {
		redisCache, err := cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
			cache.WithKeyPrefix(serviceName+":"),
		)
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		a.cache = redisCache
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	} else {
		a.cache = cache.NoopCache{}
		logger.Info("Cache disabled")
	}

	a.tracerProvider, err = telemetry.NewTracerProvider(ctx, telemetry.Config{
		ServiceName: serviceName,
		Version:     Version,
		Environment: cfg.AppEnv,
		Endpoint:    cfg.OTLPEndpoint,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init failed: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(a.dbPool, "ratings"),
	)

	ratingRepo := repository.NewRatingRepository(a.dbPool, repository.WithQueryTimeout(cfg.DBQueryTimeout))

	scoringService := service.NewScoringService(ratingRepo, logger, service.WithScaleFactor(cfg.ScoringScaleFactor))

	grpcHandlers := handler.NewGRPCHandlers(scoringService, a.cache, logger, cfg.CacheTTL,
		handler.WithCacheMetrics(handler.NewCacheMetrics(registry)),
	)

	a.grpcServer, err = grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(cfg.GRPCLoggingEnabled),
		grpcsrv.WithMetrics(grpcsrv.NewMetrics(registry)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	a.grpcServer.RegisterServiceWithHealth(pb.TicketScoring_ServiceDesc.ServiceName, func(s *grpc.Server) {
		pb.RegisterTicketScoringServer(s, grpcHandlers)
	})

	a.adminServer = admin.New(
		admin.WithAddr(cfg.MetricsAddr),
		admin.WithGatherer(registry),
		admin.WithLogger(logger),
		admin.WithReadinessCheck("database", a.dbPool.PingContext),
		admin.WithReadinessCheck("cache", a.cache.Ping),
	)

	return a, nil
}

// GRPCAddr returns the address the gRPC server listens on.
func (a *App) GRPCAddr() net.Addr {
	return a.grpcServer.Addr()
}

// Start serves gRPC and the admin endpoints in the background.
func (a *App) Start() error {
	a.logger.Info("application starting")
	if err := a.adminServer.Start(); err != nil {
		return fmt.Errorf("admin server: %w", err)
	}
	a.grpcServer.Start()
	return nil
}

// Run starts the application and blocks until ctx is done or a shutdown
// signal is received.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.logger.Info("application shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return a.Shutdown(shutdownCtx)
}

// Shutdown stops accepting RPCs, drains in-flight ones and releases every
// resource, in reverse order of creation.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("grpc server: %w", err))
	}
	if err := a.adminServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("admin server: %w", err))
	}
	if err := a.tracerProvider.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracer provider: %w", err))
	}
	errs = append(errs, a.close())

	if err := errors.Join(errs...); err != nil {
		a.logger.Error("shutdown completed with errors", zap.Error(err))
		return err
	}

	a.logger.Info("graceful shutdown completed successfully")
	_ = a.logger.Sync()
	return nil
}

func (a *App) close() error {
	var errs []error
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache: %w", err))
		}
	}
	if a.dbPool != nil {
		if err := a.dbPool.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}
	return errors.Join(errs...)
}
