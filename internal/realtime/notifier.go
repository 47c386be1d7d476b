package realtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// ErrQueueFull reports that the outbound queue had no room for an event.
var ErrQueueFull = errors.New("notifier queue full")

// Notifier is the publisher used by the services. Publish only enqueues;
// Run drains the queue into the broker in publish order. Failures are
// logged and counted and never reach the caller.
type Notifier struct {
	broker  Broker
	queue   chan Envelope
	timeout time.Duration
	metrics Metrics
	log     *slog.Logger
}

// NewNotifier creates a notifier with room for buffer pending events. Each
// broker hand-off is bounded by timeout.
func NewNotifier(log *slog.Logger, broker Broker, buffer int, timeout time.Duration, metrics Metrics) *Notifier {
	if buffer <= 0 {
		buffer = 1
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Notifier{
		broker:  broker,
		queue:   make(chan Envelope, buffer),
		timeout: timeout,
		metrics: metrics,
		log:     log.With("component", "notifier"),
	}
}

// Publish queues e for broadcast to its retrospective room.
func (n *Notifier) Publish(ctx context.Context, e domain.Event) {
	env, err := Encode(e)
	if err != nil {
		n.fail(ctx, e.Type.String(), e.RetroID, err)
		return
	}

	select {
	case n.queue <- env:
	default:
		n.fail(ctx, env.Type, env.Room, ErrQueueFull)
	}
}

// Run hands queued events to the broker until ctx is done. Events still
// queued at that point are flushed with a fresh timeout.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case env := <-n.queue:
			n.send(ctx, env)
		case <-ctx.Done():
			n.drain()
			return nil
		}
	}
}

func (n *Notifier) drain() {
	for {
		select {
		case env := <-n.queue:
			n.send(context.Background(), env)
		default:
			return
		}
	}
}

func (n *Notifier) send(ctx context.Context, env Envelope) {
	ctx = context.WithoutCancel(ctx)
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	if err := n.broker.Publish(ctx, env); err != nil {
		n.fail(ctx, env.Type, env.Room, err)
		return
	}
	n.metrics.Published(env.Type)
}

func (n *Notifier) fail(ctx context.Context, eventType, room string, err error) {
	n.metrics.PublishFailed()
	n.log.WarnContext(ctx, "event not broadcast",
		slog.String("type", eventType),
		slog.String("room", room),
		slog.String("error", err.Error()),
	)
}
