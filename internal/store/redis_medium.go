package store

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "scms:"
	changeChannel = "scms:changes"
)

// RedisMedium persists values as plain Redis strings and fans out change
// notifications over a pub/sub channel, one message per written key.
type RedisMedium struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisMedium(client *redis.Client, logger *slog.Logger) *RedisMedium {
	return &RedisMedium{
		client: client,
		logger: logger,
	}
}

func (m *RedisMedium) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := m.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (m *RedisMedium) Set(ctx context.Context, key, value string) error {
	if err := m.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return err
	}
	m.notify(ctx, key)
	return nil
}

func (m *RedisMedium) Delete(ctx context.Context, key string) error {
	if err := m.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return err
	}
	m.notify(ctx, key)
	return nil
}

// Watch subscribes to the change channel. The returned channel closes when ctx
// is done. Slow consumers drop messages rather than block the subscriber loop.
func (m *RedisMedium) Watch(ctx context.Context) (<-chan string, error) {
	sub := m.client.Subscribe(ctx, changeChannel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, err
	}

	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				default:
					m.logger.Warn("Dropping change notification for slow watcher", "key", msg.Payload)
				}
			}
		}
	}()
	return out, nil
}

func (m *RedisMedium) Close() error {
	return m.client.Close()
}

// notify is best effort: a failed publish loses the signal, not the write,
// matching the fire-and-forget contract of the change channel.
func (m *RedisMedium) notify(ctx context.Context, key string) {
	if err := m.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		m.logger.Warn("Failed to publish change notification", "key", key, "error", err)
	}
}
