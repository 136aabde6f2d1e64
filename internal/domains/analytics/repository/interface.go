package repository

import (
	"context"
	"time"

	"circuithub-backend/internal/domains/analytics/model"
)

type RepositoryInterface interface {
	// Append stores one raw event. Events are immutable once written.
	Append(ctx context.Context, event *model.PageViewEvent) error
	// ListSince returns events with timestamp >= since, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]model.PageViewEvent, error)
	// DeleteOlderThan prunes events past the retention horizon and reports
	// how many rows went away.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
