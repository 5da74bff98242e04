package hub

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSink publishes every event to a Redis channel.
type RedisSink struct {
	client  *redis.Client
	channel string
}

// NewRedisSink connects to the Redis server at url (redis://...) and checks
// that it answers.
func NewRedisSink(ctx context.Context, url, channel string) (*RedisSink, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("hub.NewRedisSink: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("hub.NewRedisSink: %w", err)
	}

	return &RedisSink{client: client, channel: channel}, nil
}

// Publish implements Sink.
func (s *RedisSink) Publish(ctx context.Context, message []byte) error {
	return s.client.Publish(ctx, s.channel, message).Err()
}

// Close closes the Redis connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
