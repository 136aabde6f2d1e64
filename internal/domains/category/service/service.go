package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"circuithub-backend/internal/domains/category/model"
	"circuithub-backend/internal/domains/category/repository"
	"circuithub-backend/internal/shared/utils"
)

type categoryService struct {
	repo repository.RepositoryInterface
}

func NewCategoryService(repo repository.RepositoryInterface) ServiceInterface {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewInvalidInputError("name is required")
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(name)
	}
	if slug == "" {
		return nil, model.NewInvalidInputError("name does not produce a usable slug")
	}

	// Pre-check for a friendly error; the unique index catches races.
	exists, err := s.repo.ExistsBySlug(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, model.NewSlugConflictError(slug)
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count categories: %w", err)
		}
		orderIndex = count
	}

	color := req.Color
	if color == "" {
		color = model.DefaultColor
	}
	icon := req.Icon
	if icon == "" {
		icon = model.DefaultIcon
	}

	category := &model.Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: req.Description,
		Color:       color,
		Icon:        icon,
		OrderIndex:  orderIndex,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		if err == model.ErrSlugConflict {
			return nil, model.NewSlugConflictError(slug)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidInputError(err.Error())
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrCategoryNotFound {
			return nil, model.NewCategoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, model.NewInvalidInputError("name must not be empty")
		}
		category.Name = name
	}
	if req.Slug != nil && *req.Slug != category.Slug {
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
		category.Slug = slug
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.OrderIndex != nil {
		category.OrderIndex = *req.OrderIndex
	}

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		switch err {
		case model.ErrCategoryNotFound:
			return nil, model.NewCategoryNotFoundError()
		case model.ErrSlugConflict:
			return nil, model.NewSlugConflictError(category.Slug)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountTutorials(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count tutorials: %w", err)
	}
	if count > 0 {
		return model.NewHasTutorialsError(count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrCategoryNotFound {
			return model.NewCategoryNotFoundError()
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrCategoryNotFound {
			return nil, model.NewCategoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.NewCategoryNotFoundError()
	}

	category, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if err == model.ErrCategoryNotFound {
			return nil, model.NewCategoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}
	return category, nil
}
