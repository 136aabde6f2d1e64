package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxTags              = 10
	MaxTagLength         = 50
)

// CreateTutorialRequest is the admin payload to create a tutorial.
type CreateTutorialRequest struct {
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	CategoryID    uuid.UUID `json:"category_id"`
	Difficulty    string    `json:"difficulty"`
	Tags          []string  `json:"tags"`
	Published     bool      `json:"published"`
	FeaturedImage *string   `json:"featured_image"`
}

func (r CreateTutorialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error("title must be 1-200 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 2000 characters"),
		),
		validation.Field(&r.CategoryID,
			validation.By(requiredUUID),
		),
		validation.Field(&r.Difficulty,
			validation.By(optionalDifficulty),
		),
		validation.Field(&r.Tags,
			validation.Length(0, MaxTags).Error("at most 10 tags allowed"),
			validation.Each(validation.Length(1, MaxTagLength).Error("tags must be 1-50 characters")),
		),
	)
}

// UpdateTutorialRequest carries partial updates; nil fields keep their
// prior values. Tags replace wholesale when present.
type UpdateTutorialRequest struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Description   *string    `json:"description"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Difficulty    *string    `json:"difficulty"`
	Tags          []string   `json:"tags"`
	Published     *bool      `json:"published"`
	FeaturedImage *string    `json:"featured_image"`
}

func (r UpdateTutorialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Length(1, MaxTitleLength).Error("title must be 1-200 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 2000 characters"),
		),
		validation.Field(&r.Difficulty,
			validation.By(optionalDifficulty),
		),
		validation.Field(&r.Tags,
			validation.Length(0, MaxTags).Error("at most 10 tags allowed"),
			validation.Each(validation.Length(1, MaxTagLength).Error("tags must be 1-50 characters")),
		),
	)
}

// ListTutorialsQuery holds the listing filters. Search and Tag are applied
// in memory after the store query, preserving listing order.
type ListTutorialsQuery struct {
	CategorySlug string `form:"category"`
	Search       string `form:"search"`
	Tag          string `form:"tag"`
}

func requiredUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_required", "category_id is required")
	}
	return nil
}

func optionalDifficulty(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	if !IsValidDifficulty(s) {
		return validation.NewError("validation_difficulty", "difficulty must be beginner, intermediate or advanced")
	}
	return nil
}
