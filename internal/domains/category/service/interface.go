package service

import (
	"context"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/category/model"
)

type ServiceInterface interface {
	// Create creates a category, deriving the slug from the name when not
	// supplied and defaulting order_index to the current category count.
	Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error)

	// Update applies a partial update; omitted fields keep their prior
	// values. A changed slug is re-validated for uniqueness.
	Update(ctx context.Context, id uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error)

	// Delete removes a category. Refused while any tutorial references it.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all categories ordered by order_index ASC, name ASC.
	List(ctx context.Context) ([]model.Category, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}
