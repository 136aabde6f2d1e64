package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"circuithub-backend/internal/domains/tutorial/model"
	"circuithub-backend/pkg/cache"
	"circuithub-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	publishedListCacheKey = "tutorials:list:published"
	tutorialCacheTTL      = 5 * time.Minute
)

const tutorialColumns = `id, title, slug, description, category_id, difficulty, tags,
        published, view_count, featured_image, created_at, updated_at`

func scanTutorial(row pgx.Row) (*model.Tutorial, error) {
	var t model.Tutorial
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Slug,
		&t.Description,
		&t.CategoryID,
		&t.Difficulty,
		pq.Array(&t.Tags),
		&t.Published,
		&t.ViewCount,
		&t.FeaturedImage,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}

func (r *postgresRepository) Create(ctx context.Context, tutorial *model.Tutorial) (*model.Tutorial, error) {
	query := `
        INSERT INTO tutorials (id, title, slug, description, category_id, difficulty,
            tags, published, view_count, featured_image)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + tutorialColumns

	created, err := scanTutorial(r.pool.QueryRow(
		ctx,
		query,
		tutorial.ID,
		tutorial.Title,
		tutorial.Slug,
		tutorial.Description,
		tutorial.CategoryID,
		tutorial.Difficulty,
		pq.Array(tutorial.Tags),
		tutorial.Published,
		tutorial.ViewCount,
		tutorial.FeaturedImage,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on the slug index
				return nil, model.ErrSlugConflict
			case "23503": // foreign_key_violation on category_id
				return nil, model.ErrInvalidCategory
			}
		}
		return nil, fmt.Errorf("failed to create tutorial: %w", err)
	}

	r.invalidateList(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tutorial, error) {
	query := `SELECT ` + tutorialColumns + ` FROM tutorials WHERE id = $1`

	tutorial, err := scanTutorial(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTutorialNotFound
		}
		return nil, fmt.Errorf("failed to get tutorial: %w", err)
	}

	return tutorial, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Tutorial, error) {
	query := `SELECT ` + tutorialColumns + ` FROM tutorials WHERE slug = $1`

	tutorial, err := scanTutorial(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTutorialNotFound
		}
		return nil, fmt.Errorf("failed to get tutorial by slug: %w", err)
	}

	return tutorial, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tutorials WHERE slug = $1 AND id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, categoryID *uuid.UUID, publishedOnly bool) ([]model.Tutorial, error) {
	// Only the unfiltered published list is hot enough to cache; admin and
	// per-category queries go straight to the store.
	cacheable := categoryID == nil && publishedOnly
	if cacheable {
		var cached []model.Tutorial
		if found, err := r.cache.Get(ctx, publishedListCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := `SELECT ` + tutorialColumns + ` FROM tutorials WHERE 1=1`
	args := []interface{}{}

	if categoryID != nil {
		args = append(args, *categoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if publishedOnly {
		query += " AND published = TRUE"
	}
	query += " ORDER BY created_at DESC, title ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorials: %w", err)
	}
	defer rows.Close()

	tutorials := make([]model.Tutorial, 0)
	for rows.Next() {
		t, err := scanTutorial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tutorial: %w", err)
		}
		tutorials = append(tutorials, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tutorials: %w", err)
	}

	if cacheable {
		_ = r.cache.Set(ctx, publishedListCacheKey, tutorials, tutorialCacheTTL)
	}

	return tutorials, nil
}

func (r *postgresRepository) Update(ctx context.Context, tutorial *model.Tutorial) (*model.Tutorial, error) {
	query := `
        UPDATE tutorials
        SET title = $2, slug = $3, description = $4, category_id = $5, difficulty = $6,
            tags = $7, published = $8, featured_image = $9, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + tutorialColumns

	updated, err := scanTutorial(r.pool.QueryRow(
		ctx,
		query,
		tutorial.ID,
		tutorial.Title,
		tutorial.Slug,
		tutorial.Description,
		tutorial.CategoryID,
		tutorial.Difficulty,
		pq.Array(tutorial.Tags),
		tutorial.Published,
		tutorial.FeaturedImage,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTutorialNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, model.ErrSlugConflict
			case "23503":
				return nil, model.ErrInvalidCategory
			}
		}
		return nil, fmt.Errorf("failed to update tutorial: %w", err)
	}

	r.invalidateList(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// The tutorial and its comments go together; raw page-view events keep
	// their tutorial_id for historical aggregation.
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE tutorial_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete tutorial comments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM tutorials WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete tutorial: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrTutorialNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateList(ctx)
	return nil
}

func (r *postgresRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	// A single UPDATE keeps concurrent increments atomic without a
	// read-modify-write round trip.
	tag, err := r.pool.Exec(ctx, `UPDATE tutorials SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTutorialNotFound
	}

	r.invalidateList(ctx)
	return nil
}

func (r *postgresRepository) invalidateList(ctx context.Context) {
	_ = r.cache.Delete(ctx, publishedListCacheKey)
}
