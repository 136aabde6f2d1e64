package repository

import (
	"context"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/comment/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	// ListByTutorial returns a tutorial's comments oldest first, the order
	// the public page renders them in.
	ListByTutorial(ctx context.Context, tutorialID uuid.UUID, approvedOnly bool) ([]model.Comment, error)
	// ListWithTutorial feeds the moderation queue, newest first. status is
	// one of the model.Status* values; tutorialID narrows to one tutorial
	// when non-nil.
	ListWithTutorial(ctx context.Context, status string, tutorialID *uuid.UUID) ([]model.CommentWithTutorial, error)
	// Approve marks a comment approved. Approving an already approved
	// comment is a no-op, not an error.
	Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	// Delete removes a single comment. Replies are left in place and show
	// up as top-level comments afterwards.
	Delete(ctx context.Context, id uuid.UUID) error
	CountPending(ctx context.Context) (int, error)
}
