package realtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type countingMetrics struct {
	subscribers atomic.Int64
	published   atomic.Int64
	failed      atomic.Int64
	delivered   atomic.Int64
	dropped     atomic.Int64
}

func (m *countingMetrics) SubscriberAdded()   { m.subscribers.Add(1) }
func (m *countingMetrics) SubscriberRemoved() { m.subscribers.Add(-1) }
func (m *countingMetrics) Published(string)   { m.published.Add(1) }
func (m *countingMetrics) PublishFailed()     { m.failed.Add(1) }
func (m *countingMetrics) Delivered(n int)    { m.delivered.Add(int64(n)) }
func (m *countingMetrics) Dropped(n int)      { m.dropped.Add(int64(n)) }

func mustEncode(t *testing.T, typ domain.EventType, room string) Envelope {
	t.Helper()
	env, err := Encode(domain.NewEvent(typ, room, domain.EntityRef{ID: "x"}))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return env
}

func receive(t *testing.T, sub *Subscriber) Envelope {
	t.Helper()
	select {
	case env, ok := <-sub.C():
		if !ok {
			t.Fatal("subscriber channel closed")
		}
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for envelope")
	}
	return Envelope{}
}

func expectNothing(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case env := <-sub.C():
		t.Fatalf("unexpected envelope: %+v", env)
	case <-time.After(50 * time.Millisecond):
	}
}

// fakeBroker records publishes and lets tests script Run.
type fakeBroker struct {
	mu        sync.Mutex
	published []Envelope
	err       error
	runs      atomic.Int32
	run       func(ctx context.Context, deliver func(Envelope)) error
}

func (b *fakeBroker) Publish(_ context.Context, env Envelope) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, env)
	return nil
}

func (b *fakeBroker) Run(ctx context.Context, deliver func(Envelope)) error {
	b.runs.Add(1)
	if b.run != nil {
		return b.run(ctx, deliver)
	}
	<-ctx.Done()
	return nil
}

func (b *fakeBroker) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.published))
	for i, env := range b.published {
		out[i] = env.Type
	}
	return out
}
