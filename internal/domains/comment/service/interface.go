package service

import (
	"context"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	// Create submits a public comment on the tutorial identified by slug.
	// It always enters the moderation queue unapproved.
	Create(ctx context.Context, tutorialSlug string, req model.CreateCommentRequest) (*model.Comment, error)
	// CreateAdminReply posts an admin comment on the tutorial identified
	// by ID; req.Approved controls whether it publishes immediately.
	CreateAdminReply(ctx context.Context, tutorialID uuid.UUID, req model.AdminCreateCommentRequest) (*model.Comment, error)
	// ListForTutorial returns the approved comments shown on the public
	// tutorial page.
	ListForTutorial(ctx context.Context, tutorialSlug string) ([]model.Comment, error)
	// List returns the moderation queue.
	List(ctx context.Context, query model.ListCommentsQuery) ([]model.CommentWithTutorial, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountPending(ctx context.Context) (int, error)
}
