package repository

import (
	"context"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/tutorial/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, tutorial *model.Tutorial) (*model.Tutorial, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tutorial, error)
	GetBySlug(ctx context.Context, slug string) (*model.Tutorial, error)
	// ExistsBySlug reports whether another tutorial already uses slug.
	// Pass uuid.Nil as excludeID to check against all rows.
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	// List returns tutorials newest first, optionally restricted to one
	// category and to published rows only.
	List(ctx context.Context, categoryID *uuid.UUID, publishedOnly bool) ([]model.Tutorial, error)
	Update(ctx context.Context, tutorial *model.Tutorial) (*model.Tutorial, error)
	// Delete removes the tutorial and its comments in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementViewCount bumps view_count by one. Only the view-tracking
	// pipeline calls this.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
