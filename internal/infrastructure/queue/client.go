package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"circuithub-backend/internal/config"
	"circuithub-backend/internal/domains/analytics/model"
	"circuithub-backend/internal/shared"
)

// Client wraps the asynq producer side. The API process enqueues; the
// worker process consumes.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Host,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) EnqueueTrackPageView(ctx context.Context, payload model.TrackPageViewPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal track payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeTrackPageView, data)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueAnalytics),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue track task: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
