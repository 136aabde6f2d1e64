package repository

import (
	"context"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/category/model"
)

// RepositoryInterface is the category data-access contract. Referential and
// slug invariants are enforced at the service boundary; the store's unique
// constraint remains the final authority under concurrent writes.
type RepositoryInterface interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)

	// ExistsBySlug reports whether another category (excluding excludeID)
	// already claims the slug. Pass uuid.Nil to check all rows.
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// List returns all categories ordered by order_index ASC, name ASC.
	List(ctx context.Context) ([]model.Category, error)

	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)

	// CountTutorials reports how many tutorials reference the category.
	CountTutorials(ctx context.Context, categoryID uuid.UUID) (int, error)
}
