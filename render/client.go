package render

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

var upgrader = websocket.Upgrader{}

const (
	writeWait      = 1 * time.Second
	pubResolution  = 100 * time.Millisecond
	pingResolution = 500 * time.Millisecond
	pongWait       = pingResolution * 4
)

// ErrPongDeadlineExceeded indicates a client stopped responding to pings
// and should be treated as disconnected.
var ErrPongDeadlineExceeded = errors.New("render: client disconnect, pong deadline exceeded")

// client publishes a single browser's Snapshot stream over a websocket,
// running its read pump, ping/pong liveness check, and publish loop as a
// cooperating goroutine group — any one of them returning ends the
// connection and tears down the other two.
type client struct {
	updates <-chan Snapshot
	cancel  func()
	ws      *websock
}

func newClient(hub *Hub, w http.ResponseWriter, r *http.Request) (*client, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, err
	}
	updates, cancel := hub.Subscribe()
	return &client{updates: updates, cancel: cancel, ws: newWebSock(conn)}, nil
}

// Sync runs the connection until the client disconnects or the context is
// cancelled.
func (c *client) Sync(ctx context.Context) error {
	defer c.cancel()
	defer c.ws.Close()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return c.readPump(groupCtx) })
	group.Go(func() error { return c.pingPong(groupCtx) })
	group.Go(func() error { return c.publish(groupCtx) })
	return group.Wait()
}

// readPump drains client messages so the gorilla/websocket library's pong
// handler gets invoked; this client never expects meaningful input.
func (c *client) readPump(ctx context.Context) error {
	for {
		err := c.ws.Read(ctx, func(ws *websocket.Conn) (readErr error) {
			_, _, readErr = ws.ReadMessage()
			return
		})
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

func (c *client) pingPong(ctx context.Context) error {
	pong := make(chan struct{})
	defer close(pong)
	c.ws.ws.SetPongHandler(func(_ string) error {
		select {
		case pong <- struct{}{}:
		case <-ctx.Done():
		}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := c.ping(ctx); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (c *client) ping(ctx context.Context) error {
	return c.ws.Write(ctx, func(ws *websocket.Conn) (err error) {
		if err = ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
			if isUnexpectedClose(err) {
				err = fmt.Errorf("render: ping failed: %w", err)
			}
		}
		return
	})
}

func (c *client) publish(ctx context.Context) error {
	lastSync := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-c.updates:
			if !ok {
				return nil
			}
			if time.Since(lastSync) < pubResolution {
				continue
			}
			lastSync = time.Now()

			err := c.ws.Write(ctx, func(ws *websocket.Conn) (writeErr error) {
				if writeErr = ws.SetWriteDeadline(time.Now().Add(writeWait)); writeErr != nil {
					return fmt.Errorf("render: failed to set deadline: %w", writeErr)
				}
				if writeErr = ws.WriteJSON(snap); writeErr != nil && isUnexpectedClose(writeErr) {
					writeErr = fmt.Errorf("render: publish failed: %w", writeErr)
				}
				return
			})
			if err != nil {
				return err
			}
		}
	}
}
