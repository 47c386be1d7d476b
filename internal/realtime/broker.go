package realtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// Broker carries envelopes between instances. Publish hands one envelope
// over; Run receives envelopes from every instance, including this one, and
// passes them to deliver until ctx is done or the subscription fails.
type Broker interface {
	Publish(ctx context.Context, env Envelope) error
	Run(ctx context.Context, deliver func(Envelope)) error
}

// LocalBroker delivers straight to an in-process hub. It suits a single
// instance deployment.
type LocalBroker struct {
	hub *Hub
}

func NewLocalBroker(hub *Hub) *LocalBroker {
	return &LocalBroker{hub: hub}
}

func (b *LocalBroker) Publish(_ context.Context, env Envelope) error {
	b.hub.Broadcast(env)
	return nil
}

// Run blocks until ctx is done; delivery already happened in Publish.
func (b *LocalBroker) Run(ctx context.Context, _ func(Envelope)) error {
	<-ctx.Done()
	return nil
}

// RetroEvicter drops an instance-local copy of a retrospective.
type RetroEvicter interface {
	Invalidate(retroID string)
}

// relay returns the deliver callback for broker.Run. Retro changes made on
// any instance evict the local copy before subscribers hear about them, so
// their refetch reads the store.
func relay(hub *Hub, evict RetroEvicter) func(Envelope) {
	return func(env Envelope) {
		if evict != nil {
			switch domain.EventType(env.Type) {
			case domain.EventRetroUpdated, domain.EventRetroDeleted:
				evict.Invalidate(env.Room)
			}
		}
		hub.Broadcast(env)
	}
}

// RunBroker keeps broker.Run feeding hub until ctx is done, restarting the
// subscription after delay whenever it fails. evict may be nil.
func RunBroker(ctx context.Context, broker Broker, hub *Hub, evict RetroEvicter, delay time.Duration, log *slog.Logger) error {
	log = log.With("component", "broker")
	deliver := relay(hub, evict)
	for {
		err := broker.Run(ctx, deliver)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			err = errors.New("subscription ended")
		}
		log.ErrorContext(ctx, "broker subscription failed, restarting",
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
