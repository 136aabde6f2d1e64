package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	categorymodel "circuithub-backend/internal/domains/category/model"
	categoryrepo "circuithub-backend/internal/domains/category/repository"
	"circuithub-backend/internal/domains/tutorial/model"
	"circuithub-backend/internal/domains/tutorial/repository"
	"circuithub-backend/internal/shared/utils"
)

type tutorialService struct {
	repo         repository.RepositoryInterface
	categoryRepo categoryrepo.RepositoryInterface
}

func NewTutorialService(repo repository.RepositoryInterface, categoryRepo categoryrepo.RepositoryInterface) ServiceInterface {
	return &tutorialService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

func (s *tutorialService) Create(ctx context.Context, req model.CreateTutorialRequest) (*model.Tutorial, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, model.NewInvalidInputError("title is required")
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(title)
	}
	if slug == "" {
		return nil, model.NewInvalidInputError("title does not produce a usable slug")
	}

	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if err == categorymodel.ErrCategoryNotFound {
			return nil, model.NewInvalidCategoryError()
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	// Pre-check for a friendly error; the unique index catches races.
	exists, err := s.repo.ExistsBySlug(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, model.NewSlugConflictError(slug)
	}

	difficulty := model.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = model.DifficultyBeginner
	}

	tutorial := &model.Tutorial{
		ID:            uuid.New(),
		Title:         title,
		Slug:          slug,
		Description:   strings.TrimSpace(req.Description),
		CategoryID:    req.CategoryID,
		Difficulty:    difficulty,
		Tags:          normalizeTags(req.Tags),
		Published:     req.Published,
		ViewCount:     0,
		FeaturedImage: req.FeaturedImage,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	created, err := s.repo.Create(ctx, tutorial)
	if err != nil {
		switch err {
		case model.ErrSlugConflict:
			return nil, model.NewSlugConflictError(slug)
		case model.ErrInvalidCategory:
			return nil, model.NewInvalidCategoryError()
		}
		return nil, fmt.Errorf("failed to create tutorial: %w", err)
	}

	return created, nil
}

func (s *tutorialService) Update(ctx context.Context, id uuid.UUID, req model.UpdateTutorialRequest) (*model.Tutorial, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	tutorial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrTutorialNotFound {
			return nil, model.NewTutorialNotFoundError()
		}
		return nil, fmt.Errorf("failed to get tutorial: %w", err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, model.NewInvalidInputError("title must not be empty")
		}
		tutorial.Title = title
	}
	if req.Slug != nil && *req.Slug != tutorial.Slug {
		slug := strings.TrimSpace(*req.Slug)
		if slug == "" {
			return nil, model.NewInvalidInputError("slug must not be empty")
		}
		exists, err := s.repo.ExistsBySlug(ctx, slug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if exists {
			return nil, model.NewSlugConflictError(slug)
		}
		tutorial.Slug = slug
	}
	if req.Description != nil {
		tutorial.Description = strings.TrimSpace(*req.Description)
	}
	if req.CategoryID != nil && *req.CategoryID != tutorial.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if err == categorymodel.ErrCategoryNotFound {
				return nil, model.NewInvalidCategoryError()
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		tutorial.CategoryID = *req.CategoryID
	}
	if req.Difficulty != nil && *req.Difficulty != "" {
		tutorial.Difficulty = model.Difficulty(*req.Difficulty)
	}
	if req.Tags != nil {
		tutorial.Tags = normalizeTags(req.Tags)
	}
	if req.Published != nil {
		tutorial.Published = *req.Published
	}
	if req.FeaturedImage != nil {
		tutorial.FeaturedImage = req.FeaturedImage
	}

	updated, err := s.repo.Update(ctx, tutorial)
	if err != nil {
		switch err {
		case model.ErrTutorialNotFound:
			return nil, model.NewTutorialNotFoundError()
		case model.ErrSlugConflict:
			return nil, model.NewSlugConflictError(tutorial.Slug)
		case model.ErrInvalidCategory:
			return nil, model.NewInvalidCategoryError()
		}
		return nil, fmt.Errorf("failed to update tutorial: %w", err)
	}

	return updated, nil
}

func (s *tutorialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrTutorialNotFound {
			return model.NewTutorialNotFoundError()
		}
		return fmt.Errorf("failed to delete tutorial: %w", err)
	}
	return nil
}

func (s *tutorialService) List(ctx context.Context, query model.ListTutorialsQuery, includeUnpublished bool) ([]model.Tutorial, error) {
	var categoryID *uuid.UUID
	if slug := strings.TrimSpace(strings.ToLower(query.CategorySlug)); slug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			if err == categorymodel.ErrCategoryNotFound {
				// Unknown category filter matches nothing rather than erroring.
				return []model.Tutorial{}, nil
			}
			return nil, fmt.Errorf("failed to resolve category filter: %w", err)
		}
		categoryID = &category.ID
	}

	tutorials, err := s.repo.List(ctx, categoryID, !includeUnpublished)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorials: %w", err)
	}

	tutorials = FilterBySearch(tutorials, query.Search)
	tutorials = FilterByTag(tutorials, query.Tag)

	return tutorials, nil
}

func (s *tutorialService) GetByID(ctx context.Context, id uuid.UUID) (*model.Tutorial, error) {
	tutorial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrTutorialNotFound {
			return nil, model.NewTutorialNotFoundError()
		}
		return nil, fmt.Errorf("failed to get tutorial: %w", err)
	}
	return tutorial, nil
}

func (s *tutorialService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.Tutorial, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.NewTutorialNotFoundError()
	}

	tutorial, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if err == model.ErrTutorialNotFound {
			return nil, model.NewTutorialNotFoundError()
		}
		return nil, fmt.Errorf("failed to get tutorial by slug: %w", err)
	}

	// Drafts are invisible on the public surface.
	if !tutorial.Published && !includeUnpublished {
		return nil, model.NewTutorialNotFoundError()
	}

	return tutorial, nil
}

// FilterBySearch keeps tutorials whose title or description contains term,
// case-insensitively. Order is preserved. An empty term keeps everything.
func FilterBySearch(tutorials []model.Tutorial, term string) []model.Tutorial {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return tutorials
	}

	filtered := make([]model.Tutorial, 0, len(tutorials))
	for _, t := range tutorials {
		if strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterByTag keeps tutorials carrying the exact tag, case-insensitively.
// Order is preserved. An empty tag keeps everything.
func FilterByTag(tutorials []model.Tutorial, tag string) []model.Tutorial {
	tag = strings.TrimSpace(strings.ToLower(tag))
	if tag == "" {
		return tutorials
	}

	filtered := make([]model.Tutorial, 0, len(tutorials))
	for _, t := range tutorials {
		for _, candidate := range t.Tags {
			if strings.ToLower(candidate) == tag {
				filtered = append(filtered, t)
				break
			}
		}
	}
	return filtered
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, tag)
	}
	return normalized
}
