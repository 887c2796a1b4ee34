// Package server initializes and runs the Love OS server.
// It opens the database, runs migrations, seeds the two partner spaces,
// starts the change-feed listener, and serves the HTTP API until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pairspace/loveos/internal/logging"
	"github.com/pairspace/loveos/internal/server/api"
	"github.com/pairspace/loveos/internal/server/config"
	"github.com/pairspace/loveos/internal/server/feed"
	"github.com/pairspace/loveos/internal/server/repositories/repomanager"
	"github.com/pairspace/loveos/internal/server/services"
	"github.com/pairspace/loveos/internal/server/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	spaces   *services.SpaceService
	content  *services.ContentService
	uploader *storage.Uploader
	hub      *feed.Hub
	listener *feed.Listener
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()

	uploader := storage.NewUploader(storage.Settings{
		RootUser:     c.S3RootUser,
		RootPassword: c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})

	hub := feed.NewHub()

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		spaces:   services.NewSpaceService(db, repos, c),
		content:  services.NewContentService(db, repos),
		uploader: uploader,
		hub:      hub,
		listener: feed.NewListener(c.DatabaseDSN, hub, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) prepareStore(ctx context.Context) error {
	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	if err := app.spaces.Seed(ctx); err != nil {
		return fmt.Errorf("space seed error: %w", err)
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := api.NewServer(app.config.EndpointAddr, app.logger, app.spaces, app.content,
		app.uploader, app.hub, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.prepareStore(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.listener.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
