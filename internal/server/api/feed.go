package api

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const feedWriteTimeout = 10 * time.Second

// handleFeed upgrades the connection and streams change events until the
// client goes away. Events are JSON-encoded ChangeEvent values; the client
// is expected to refetch on every one.
func (s *Server) handleFeed(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	events, cancel := s.hub.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	space := currentSpace(c)
	s.logger.Info(ctx, "feed subscriber connected", "space", space)

	// Drain reads so close frames and pings are processed; the feed itself
	// is write-only.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for ev := range events {
		_ = conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		if err := conn.WriteJSON(ev); err != nil {
			s.logger.Info(ctx, "feed subscriber disconnected", "space", space, "error", err)
			return nil
		}
	}
	return nil
}
