package store

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

// dialWS is a seam for testing the subscription without a server.
var dialWS = func(ctx context.Context, rawURL string) (wsConn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	return conn, err
}

// wsConn is the subset of *websocket.Conn the subscription needs.
type wsConn interface {
	ReadJSON(v any) error
	Close() error
}

func (c *HTTPClient) feedURL() (string, error) {
	u, err := url.Parse(c.endpointURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/api/v1/feed"
	q := u.Query()
	q.Set("access_token", c.accessToken)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Subscribe opens the change feed and invokes onEvent for every decoded event
// until the returned unsubscribe function is called or the connection drops.
// Events are delivered from a dedicated goroutine; callbacks must be fast or
// hand off to their own machinery.
func (c *HTTPClient) Subscribe(ctx context.Context, onEvent func(models.ChangeEvent)) (UnsubscribeFunc, error) {
	rawURL, err := c.feedURL()
	if err != nil {
		return nil, err
	}

	conn, err := dialWS(ctx, rawURL)
	if err != nil {
		return nil, common.ErrSubscriptionLost
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() { _ = conn.Close() })
	}

	go func() {
		defer unsubscribe()
		for {
			var ev models.ChangeEvent
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			onEvent(ev)
		}
	}()

	return unsubscribe, nil
}
