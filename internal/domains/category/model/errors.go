package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCategoryNotFound = "CAT001"
	ErrCodeSlugConflict     = "CAT002"
	ErrCodeHasTutorials     = "CAT003"
	ErrCodeInvalidInput     = "CAT004"
)

// Sentinel errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugConflict     = errors.New("category slug already exists")
	ErrHasTutorials     = errors.New("category has associated tutorials")
	ErrInvalidInput     = errors.New("invalid category input")
)

// CategoryError carries a stable code alongside the wrapped sentinel so
// handlers can map it without string matching.
type CategoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

func NewCategoryNotFoundError() *CategoryError {
	return &CategoryError{
		Code:    ErrCodeCategoryNotFound,
		Message: "Category not found",
		Err:     ErrCategoryNotFound,
	}
}

func NewSlugConflictError(slug string) *CategoryError {
	return &CategoryError{
		Code:    ErrCodeSlugConflict,
		Message: fmt.Sprintf("A category with slug '%s' already exists", slug),
		Err:     ErrSlugConflict,
	}
}

func NewHasTutorialsError(count int) *CategoryError {
	return &CategoryError{
		Code:    ErrCodeHasTutorials,
		Message: fmt.Sprintf("Category has %d associated tutorials and cannot be deleted", count),
		Err:     ErrHasTutorials,
	}
}

func NewInvalidInputError(reason string) *CategoryError {
	return &CategoryError{
		Code:    ErrCodeInvalidInput,
		Message: reason,
		Err:     ErrInvalidInput,
	}
}
