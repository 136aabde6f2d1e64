package service

import (
	"context"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/tutorial/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateTutorialRequest) (*model.Tutorial, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateTutorialRequest) (*model.Tutorial, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List applies the query filters. includeUnpublished is true only on
	// the admin surface; public callers always get published rows.
	List(ctx context.Context, query model.ListTutorialsQuery, includeUnpublished bool) ([]model.Tutorial, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tutorial, error)
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.Tutorial, error)
}
