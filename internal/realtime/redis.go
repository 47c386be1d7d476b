package realtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisBroker relays envelopes over Redis pub/sub, one channel per room
// named prefix+room.
type RedisBroker struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisBroker(client redis.UniversalClient, prefix string) *RedisBroker {
	return &RedisBroker{client: client, prefix: prefix}
}

// NewRedisClient parses url and verifies the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (b *RedisBroker) Publish(ctx context.Context, env Envelope) error {
	if err := b.client.Publish(ctx, b.prefix+env.Room, []byte(env.Payload)).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func (b *RedisBroker) Run(ctx context.Context, deliver func(Envelope)) error {
	pubsub := b.client.PSubscribe(ctx, b.prefix+"*")
	defer pubsub.Close()

	// Receive confirms the subscription before messages are consumed.
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis psubscribe: %w", err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("redis subscription closed")
			}
			env, err := decodeEvent(strings.TrimPrefix(msg.Channel, b.prefix), []byte(msg.Payload))
			if err != nil {
				continue
			}
			deliver(env)
		}
	}
}
