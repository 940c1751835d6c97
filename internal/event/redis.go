package event

import (
	"context"
	"encoding/json"
	"log"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/connectfour/internal/domain"
)

// redisPublisher is the part of *redis.Client the sink needs.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink publishes every event as JSON on a pub/sub channel.
type RedisSink struct {
	client  redisPublisher
	channel string
}

func NewRedisSink(client redisPublisher, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (r *RedisSink) Publish(ctx context.Context, msg domain.ServerMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// DialRedis connects and pings. Callers treat a failure as "run without Redis".
func DialRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "ping redis at %s", addr)
	}

	log.Println("[REDIS] Connected successfully")
	return client, nil
}
