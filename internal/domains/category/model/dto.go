package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest is the admin payload to create a category.
// Slug and OrderIndex are derived when omitted.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	OrderIndex  *int    `json:"order_index"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength).Error("name must be 1-100 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 500 characters"),
		),
		validation.Field(&r.Color,
			validation.By(optionalToken(IsValidColor, "unknown color token")),
		),
		validation.Field(&r.Icon,
			validation.By(optionalToken(IsValidIcon, "unknown icon token")),
		),
	)
}

// UpdateCategoryRequest carries partial updates; nil fields keep their
// prior values.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	OrderIndex  *int    `json:"order_index"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must not be empty"),
			validation.Length(1, MaxNameLength).Error("name must be 1-100 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 500 characters"),
		),
		validation.Field(&r.Color,
			validation.By(optionalToken(IsValidColor, "unknown color token")),
		),
		validation.Field(&r.Icon,
			validation.By(optionalToken(IsValidIcon, "unknown icon token")),
		),
	)
}

// optionalToken validates a palette/icon token when present. Handles both
// string and *string fields since ozzo indirects pointers before rules run.
func optionalToken(valid func(string) bool, msg string) validation.RuleFunc {
	return func(value interface{}) error {
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
		if !valid(s) {
			return validation.NewError("validation_token", msg)
		}
		return nil
	}
}
