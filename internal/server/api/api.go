// Package api exposes the Love OS HTTP surface: space login, the per-feature
// event logs, binary uploads, and the websocket change feed.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pairspace/loveos/internal/logging"
	"github.com/pairspace/loveos/internal/server/feed"
	"github.com/pairspace/loveos/internal/server/services"
	"github.com/pairspace/loveos/internal/server/storage"
)

// Server wires the echo router to the application services.
type Server struct {
	address  string
	echo     *echo.Echo
	logger   logging.Logger
	spaces   *services.SpaceService
	content  *services.ContentService
	uploader *storage.Uploader
	hub      *feed.Hub
	secret   []byte
}

func NewServer(address string, logger logging.Logger, spaces *services.SpaceService,
	content *services.ContentService, uploader *storage.Uploader, hub *feed.Hub, secretKey string) *Server {

	s := &Server{
		address:  address,
		echo:     echo.New(),
		logger:   logger.With("module", "http_server"),
		spaces:   spaces,
		content:  content,
		uploader: uploader,
		hub:      hub,
		secret:   []byte(secretKey),
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())

	s.initRoutes()
	return s
}

func (s *Server) initRoutes() {
	s.echo.POST("/api/v1/auth/login", s.handleLogin)

	g := s.echo.Group("/api/v1", s.accessTokenMiddleware)

	g.GET("/spaces/me", s.handleProfile)
	g.GET("/anniversary", s.handleAnniversary)

	g.GET("/moods", s.handleListMoods)
	g.GET("/moods/latest", s.handleLatestMood)
	g.POST("/moods", s.handleShareMood)

	g.GET("/photos", s.handleListPhotos)
	g.POST("/photos", s.handleAddPhoto)

	g.GET("/letters", s.handleListLetters)
	g.POST("/letters", s.handleSendLetter)

	g.GET("/questions/today", s.handleTodaysQuestion)
	g.GET("/questions/:id/answers", s.handleAnswers)
	g.POST("/answers", s.handleSubmitAnswer)
	g.PATCH("/answers/:id", s.handleUpdateAnswer)

	g.POST("/storage", s.handleUpload)

	g.GET("/feed", s.handleFeed)
}

// Handler exposes the underlying router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.echo.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
