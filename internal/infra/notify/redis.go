// Package notify fans availability-invalidation signals out over Redis
// pub/sub. Messages carry only the affected service date; anyone holding a
// cached availability picture re-queries on receipt.
package notify

import (
	"context"
	"log/slog"

	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, cfg config.RedisConfig) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: cfg.InvalidationChannel,
	}
}

func (p *RedisPublisher) PublishAvailabilityChanged(ctx context.Context, dateISO string) error {
	if err := p.client.Publish(ctx, p.channel, dateISO).Err(); err != nil {
		return errs.Wrap(err, "failed to publish invalidation")
	}
	return nil
}

// Subscribe delivers invalidated service dates to fn until ctx is cancelled.
// The free-table cache listener runs on this for the process lifetime;
// delivery is at-most-once, which is fine for invalidation.
func (p *RedisPublisher) Subscribe(ctx context.Context, fn func(dateISO string)) error {
	sub := p.client.Subscribe(ctx, p.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			slog.Warn("failed to close invalidation subscription", "error", err.Error())
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			fn(msg.Payload)
		}
	}
}
