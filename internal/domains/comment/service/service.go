package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/comment/model"
	"circuithub-backend/internal/domains/comment/repository"
	tutorialmodel "circuithub-backend/internal/domains/tutorial/model"
	tutorialrepo "circuithub-backend/internal/domains/tutorial/repository"
)

type commentService struct {
	repo         repository.RepositoryInterface
	tutorialRepo tutorialrepo.RepositoryInterface
}

func NewCommentService(repo repository.RepositoryInterface, tutorialRepo tutorialrepo.RepositoryInterface) ServiceInterface {
	return &commentService{
		repo:         repo,
		tutorialRepo: tutorialRepo,
	}
}

func (s *commentService) Create(ctx context.Context, tutorialSlug string, req model.CreateCommentRequest) (*model.Comment, error) {
	tutorial, err := s.resolveTutorial(ctx, tutorialSlug)
	if err != nil {
		return nil, err
	}
	// Drafts do not accept public comments.
	if !tutorial.Published {
		return nil, model.NewTutorialNotFoundError()
	}

	return s.create(ctx, tutorial, req, false)
}

func (s *commentService) CreateAdminReply(ctx context.Context, tutorialID uuid.UUID, req model.AdminCreateCommentRequest) (*model.Comment, error) {
	tutorial, err := s.tutorialRepo.GetByID(ctx, tutorialID)
	if err != nil {
		if err == tutorialmodel.ErrTutorialNotFound {
			return nil, model.NewTutorialNotFoundError()
		}
		return nil, fmt.Errorf("failed to resolve tutorial: %w", err)
	}

	return s.create(ctx, tutorial, req.CreateCommentRequest, req.Approved)
}

func (s *commentService) create(ctx context.Context, tutorial *tutorialmodel.Tutorial, req model.CreateCommentRequest, preApproved bool) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if err == model.ErrCommentNotFound {
				return nil, model.NewParentNotFoundError()
			}
			return nil, fmt.Errorf("failed to check parent comment: %w", err)
		}
		// A reply must stay on the tutorial its parent belongs to.
		if parent.TutorialID != tutorial.ID {
			return nil, model.NewParentMismatchError()
		}
	}

	comment := &model.Comment{
		ID:          uuid.New(),
		TutorialID:  tutorial.ID,
		ParentID:    req.ParentID,
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.TrimSpace(strings.ToLower(req.AuthorEmail)),
		Content:     strings.TrimSpace(req.Content),
		Approved:    preApproved,
		CreatedAt:   time.Now(),
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return created, nil
}

func (s *commentService) ListForTutorial(ctx context.Context, tutorialSlug string) ([]model.Comment, error) {
	tutorial, err := s.resolveTutorial(ctx, tutorialSlug)
	if err != nil {
		return nil, err
	}
	if !tutorial.Published {
		return nil, model.NewTutorialNotFoundError()
	}

	comments, err := s.repo.ListByTutorial(ctx, tutorial.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (s *commentService) List(ctx context.Context, query model.ListCommentsQuery) ([]model.CommentWithTutorial, error) {
	// The moderation queue shows pending comments unless asked otherwise.
	status := strings.TrimSpace(strings.ToLower(query.Status))
	if status == "" {
		status = model.StatusPending
	}
	if !model.IsValidStatus(status) {
		return nil, model.NewInvalidInputError("status must be all, pending or approved")
	}

	var tutorialID *uuid.UUID
	if raw := strings.TrimSpace(query.TutorialID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, model.NewInvalidInputError("tutorial_id must be a valid UUID")
		}
		tutorialID = &id
	}

	comments, err := s.repo.ListWithTutorial(ctx, status, tutorialID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation queue: %w", err)
	}

	return comments, nil
}

func (s *commentService) Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, err := s.repo.Approve(ctx, id)
	if err != nil {
		if err == model.ErrCommentNotFound {
			return nil, model.NewCommentNotFoundError()
		}
		return nil, fmt.Errorf("failed to approve comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrCommentNotFound {
			return model.NewCommentNotFoundError()
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *commentService) CountPending(ctx context.Context) (int, error) {
	count, err := s.repo.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending comments: %w", err)
	}
	return count, nil
}

func (s *commentService) resolveTutorial(ctx context.Context, slug string) (*tutorialmodel.Tutorial, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.NewTutorialNotFoundError()
	}

	tutorial, err := s.tutorialRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == tutorialmodel.ErrTutorialNotFound {
			return nil, model.NewTutorialNotFoundError()
		}
		return nil, fmt.Errorf("failed to resolve tutorial: %w", err)
	}

	return tutorial, nil
}
