package storeapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/store-api/internal/config"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/migrations"
	productservice "github.com/magabrotheeeer/store-api/internal/services/product"
	userservice "github.com/magabrotheeeer/store-api/internal/services/user"
	"github.com/magabrotheeeer/store-api/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New подключается к базе, применяет миграции и собирает роутер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "store"),
	)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Products: productservice.NewService(db, logger),
		Users:    userservice.NewService(db, logger),
		DB:       db,
		Registry: reg,
		Limiter:  rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
	})

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер и закрывает базу.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeDB()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeDB()
		return err
	}
}

func (a *App) closeDB() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
