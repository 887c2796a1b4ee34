package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/logging"
	"github.com/pairspace/loveos/internal/models"
	"github.com/sethvargo/go-retry"
)

// connectFn is a seam for testing the listener without a database.
var connectFn = func(ctx context.Context, dsn string) (listenConn, error) {
	return pgx.Connect(ctx, dsn)
}

// listenConn is the subset of *pgx.Conn the listener needs.
type listenConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// Listener holds a dedicated Postgres connection on LISTEN and feeds decoded
// notifications into the hub. The connection is re-established with
// exponential backoff whenever it drops.
type Listener struct {
	dsn    string
	hub    *Hub
	logger logging.Logger
}

func NewListener(dsn string, hub *Hub, logger logging.Logger) *Listener {
	return &Listener{dsn: dsn, hub: hub, logger: logger.With("module", "feed_listener")}
}

// Run blocks until ctx is cancelled, reconnecting as needed.
func (l *Listener) Run(ctx context.Context) error {
	backoff := retry.WithCappedDuration(30*time.Second, retry.NewExponential(time.Second))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		l.logger.Warn(ctx, "change feed connection lost, reconnecting", "error", err)
		return retry.RetryableError(err)
	})
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := connectFn(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if _, err := conn.Exec(ctx, "listen "+common.ChangeChannelName); err != nil {
		return err
	}

	l.logger.Info(ctx, "listening for table changes", "channel", common.ChangeChannelName)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev models.ChangeEvent
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			l.logger.Warn(ctx, "discarding malformed change payload", "payload", n.Payload, "error", err)
			continue
		}

		l.hub.Broadcast(ev)
	}
}
