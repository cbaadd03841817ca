package archive

import (
	"context"
	"fmt"

	"hangout_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Archiver enqueues archive tasks for the worker process.
type Archiver interface {
	ArchiveResult(ctx context.Context, record Record) error
}

// Client is the Redis-backed Archiver used in production.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient builds the asynq producer from the Redis URL.
func NewClient(cfg config.ArchiveConfig) (*Client, error) {
	if cfg.GetRedisURL() == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetArchiveQueueName()
	if queue == "" {
		queue = "default"
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

// Close releases the underlying asynq client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ArchiveResult enqueues one record for the archive worker.
func (c *Client) ArchiveResult(ctx context.Context, record Record) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewArchiveResultTask(record)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
