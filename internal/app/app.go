package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/book"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/bookcopy"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/issuehistory"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/metrics"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
	"github.com/heartmarshall/library-backend/internal/service/circulation"
	"github.com/heartmarshall/library-backend/internal/service/history"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

type circulationRecorder interface {
	ObserveCirculation(operation, outcome string, start time.Time)
}

// Run is the application entry point. It loads configuration, connects to
// the database, optionally applies migrations, wires repositories, services
// and handlers, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var (
		m   *metrics.Metrics
		rec circulationRecorder
	)
	if cfg.Metrics.Enabled {
		m = metrics.New()
		rec = m
	}

	books := book.New(pool)
	copies := bookcopy.New(pool)
	issues := issuehistory.New(pool)
	txm := postgres.NewTxManager(pool)

	catalogSvc := catalog.NewService(logger, books)
	circulationSvc := circulation.NewService(logger, books, copies, issues, txm, rec)
	historySvc := history.NewService(logger, issues)

	handlers := rest.Handlers{
		Books:   rest.NewBookHandler(catalogSvc, logger),
		Copies:  rest.NewCopyHandler(circulationSvc, logger),
		History: rest.NewHistoryHandler(historySvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(cfg, logger, handlers, m),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	migrator, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer migrator.Close() //nolint:errcheck

	applied, err := migrator.Up(ctx)
	if err != nil {
		return err
	}

	logger.Info("migrations applied", slog.Any("versions", applied))
	return nil
}
