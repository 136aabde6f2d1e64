package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"circuithub-backend/internal/domains/analytics/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const eventColumns = `id, page, tutorial_id, session_id, referrer, device_type, browser, timestamp`

func scanEvent(row pgx.Row) (*model.PageViewEvent, error) {
	var e model.PageViewEvent
	err := row.Scan(
		&e.ID,
		&e.Page,
		&e.TutorialID,
		&e.SessionID,
		&e.Referrer,
		&e.DeviceType,
		&e.Browser,
		&e.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) Append(ctx context.Context, event *model.PageViewEvent) error {
	query := `
        INSERT INTO page_view_events (id, page, tutorial_id, session_id, referrer, device_type, browser, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(
		ctx,
		query,
		event.ID,
		event.Page,
		event.TutorialID,
		event.SessionID,
		event.Referrer,
		event.DeviceType,
		event.Browser,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append page view event: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListSince(ctx context.Context, since time.Time) ([]model.PageViewEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM page_view_events WHERE timestamp >= $1 ORDER BY timestamp ASC`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list page view events: %w", err)
	}
	defer rows.Close()

	events := make([]model.PageViewEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page view event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page view events: %w", err)
	}

	return events, nil
}

func (r *postgresRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM page_view_events WHERE timestamp < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune page view events: %w", err)
	}
	return tag.RowsAffected(), nil
}
