package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"docadmin/config"
	"docadmin/internal/adapter/in/rest"
	memstore "docadmin/internal/adapter/out/storage/inmemory"
	pgstore "docadmin/internal/adapter/out/storage/postgres"
	"docadmin/internal/service"
	"docadmin/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		documentStorage service.DocumentStorage
		projectStorage  service.ProjectStorage
		trManager       service.TxManager
		pool            *pgxpool.Pool
	)

	switch cfg.StorageType {
	case config.StoragePostgres:
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if cfg.Postgres.Migrate {
			if err := pgstore.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		documentStorage = pgstore.NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
		projectStorage = pgstore.NewProjectStorage(pool, trmpgx.DefaultCtxGetter)
		trManager = manager.Must(trmpgx.NewDefaultFactory(pool))

	case config.StorageMemory:
		documentStorage = memstore.NewDocumentStorage()
		projectStorage = memstore.NewProjectStorage()
		trManager = memstore.NewTxManager()

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	documentSvc := service.NewDocumentService(documentStorage, projectStorage).
		WithLimits(cfg.Documents.DefaultPageSize, cfg.Documents.MaxPageSize)
	projectSvc := service.NewProjectService(projectStorage, trManager)

	if cfg.SeedDemo {
		if err := SeedDemo(ctx, projectSvc, documentSvc, DemoDocuments); err != nil {
			if pool != nil {
				pool.Close()
			}
			return nil, fmt.Errorf("seed demo: %w", err)
		}
	}

	router := rest.NewRouter(log, rest.NewHandler(documentSvc, projectSvc))

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

// Run serves until ctx is done or the server fails.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	defer func() {
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.srv.Shutdown(shCtx)
	})

	return g.Wait()
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.srv.Handler
}
