package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortener-stats/internal/config"
	"github.com/avc-dev/shortener-stats/internal/config/db"
	"go.uber.org/zap"
)

// App представляет приложение URL shortener
type App struct {
	config  *config.Config
	logger  *zap.Logger
	router  http.Handler
	dbPool  db.Database
	closers []io.Closer
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: logger,
	}

	if err := app.initDependencies(ctx); err != nil {
		app.Close()
		logger.Sync()
		return nil, err
	}

	return app, nil
}

// Run запускает приложение и ждет SIGINT или SIGTERM
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает соединения с хранилищами
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Error("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil

	if a.dbPool != nil {
		a.dbPool.Close()
		a.dbPool = nil
	}
}
