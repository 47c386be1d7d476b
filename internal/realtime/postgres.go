package realtime

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxNotifyPayload stays under the 8000 byte NOTIFY limit.
const maxNotifyPayload = 7900

// PostgresBroker relays envelopes with NOTIFY on one channel and a
// dedicated LISTEN connection per instance.
type PostgresBroker struct {
	pool    *pgxpool.Pool
	channel string
}

func NewPostgresBroker(pool *pgxpool.Pool, channel string) *PostgresBroker {
	return &PostgresBroker{pool: pool, channel: channel}
}

func (b *PostgresBroker) Publish(ctx context.Context, env Envelope) error {
	payload := []byte(env.Payload)
	if len(payload) > maxNotifyPayload {
		payload = env.Stripped().Payload
	}
	if _, err := b.pool.Exec(ctx, "SELECT pg_notify($1, $2)", b.channel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	return nil
}

func (b *PostgresBroker) Run(ctx context.Context, deliver func(Envelope)) error {
	pooled, err := b.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	// A connection left in LISTEN state never goes back to the pool.
	conn := pooled.Hijack()
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{b.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", b.channel, err)
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		env, err := decodeEvent("", []byte(n.Payload))
		if err != nil {
			continue
		}
		deliver(env)
	}
}
