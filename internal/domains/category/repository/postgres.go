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

	"circuithub-backend/internal/domains/category/model"
	"circuithub-backend/pkg/cache"
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
	categoryListCacheKey = "categories:list"
	categoryCacheTTL     = 15 * time.Minute
)

const categoryColumns = `id, name, slug, description, color, icon, order_index, created_at, updated_at`

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.Color,
		&c.Icon,
		&c.OrderIndex,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
        INSERT INTO categories (id, name, slug, description, color, icon, order_index)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + categoryColumns

	created, err := scanCategory(r.pool.QueryRow(
		ctx,
		query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.Color,
		category.Icon,
		category.OrderIndex,
	))
	if err != nil {
		// 23505 = unique_violation; the slug index is the final authority
		// under concurrent creation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.invalidateList(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	if found, err := r.cache.Get(ctx, categoryListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY order_index ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	// Cache failures are non-critical.
	_ = r.cache.Set(ctx, categoryListCacheKey, categories, categoryCacheTTL)

	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
        UPDATE categories
        SET name = $2, slug = $3, description = $4, color = $5, icon = $6,
            order_index = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + categoryColumns

	updated, err := scanCategory(r.pool.QueryRow(
		ctx,
		query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.Color,
		category.Icon,
		category.OrderIndex,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	r.invalidateList(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	r.invalidateList(ctx)
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountTutorials(ctx context.Context, categoryID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tutorials WHERE category_id = $1`
	if err := r.pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tutorials in category: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) invalidateList(ctx context.Context) {
	_ = r.cache.Delete(ctx, categoryListCacheKey)
}
