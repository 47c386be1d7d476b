package retroclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Handler receives change notifications. *Store implements it.
type Handler interface {
	Reconcile(ctx context.Context, ev Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, ev Event) error

func (f HandlerFunc) Reconcile(ctx context.Context, ev Event) error { return f(ctx, ev) }

// Subscriber joins one retrospective room over WebSocket and hands every
// change notification to a Handler.
type Subscriber struct {
	url       string
	dialer    *websocket.Dialer
	handler   Handler
	onConnect func(ctx context.Context) error
	log       *slog.Logger
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// OnConnect runs fn after every successful connect. Events published while
// disconnected are never replayed, so a store should reload here.
func OnConnect(fn func(ctx context.Context) error) SubscriberOption {
	return func(s *Subscriber) { s.onConnect = fn }
}

// WithDialer replaces the default WebSocket dialer.
func WithDialer(d *websocket.Dialer) SubscriberOption {
	return func(s *Subscriber) { s.dialer = d }
}

// NewSubscriber builds a subscriber for retroID on the server c talks to,
// authenticated with c's current token.
func NewSubscriber(c *Client, retroID string, h Handler, log *slog.Logger, opts ...SubscriberOption) (*Subscriber, error) {
	u, err := wsURL(c.BaseURL(), retroID, c.Token())
	if err != nil {
		return nil, err
	}
	s := &Subscriber{
		url:     u,
		dialer:  websocket.DefaultDialer,
		handler: h,
		log:     log.With("component", "subscriber", "retro_id", retroID),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func wsURL(base, retroID, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	q := url.Values{}
	q.Set("retroId", retroID)
	if token != "" {
		q.Set("token", token)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Run holds one connection until ctx is done or the connection fails.
// It returns nil when ctx ends it.
func (s *Subscriber) Run(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if s.onConnect != nil {
		if err := s.onConnect(ctx); err != nil {
			s.log.WarnContext(ctx, "resync after connect failed", slog.String("error", err.Error()))
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			s.log.WarnContext(ctx, "undecodable frame", slog.String("error", err.Error()))
			continue
		}
		switch ev.Type {
		case "joined", "left":
			s.log.DebugContext(ctx, "room "+ev.Type, slog.String("room", ev.RetroID))
			continue
		case "error":
			s.log.WarnContext(ctx, "server rejected frame", slog.String("room", ev.RetroID))
			continue
		}

		if err := s.handler.Reconcile(ctx, ev); err != nil {
			s.log.WarnContext(ctx, "reconcile failed",
				slog.String("type", ev.Type),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Listen keeps Run going, reconnecting after delay, until ctx is done.
func (s *Subscriber) Listen(ctx context.Context, delay time.Duration) error {
	for {
		err := s.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			err = errors.New("connection closed")
		}
		s.log.WarnContext(ctx, "subscription lost, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("delay", delay),
		)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}
