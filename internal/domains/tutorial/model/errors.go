package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeTutorialNotFound = "TUT001"
	ErrCodeSlugConflict     = "TUT002"
	ErrCodeInvalidCategory  = "TUT003"
	ErrCodeInvalidInput     = "TUT004"
)

// Sentinel errors
var (
	ErrTutorialNotFound = errors.New("tutorial not found")
	ErrSlugConflict     = errors.New("tutorial slug already exists")
	ErrInvalidCategory  = errors.New("category does not exist")
	ErrInvalidInput     = errors.New("invalid tutorial input")
)

type TutorialError struct {
	Code    string
	Message string
	Err     error
}

func (e *TutorialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TutorialError) Unwrap() error {
	return e.Err
}

func NewTutorialNotFoundError() *TutorialError {
	return &TutorialError{
		Code:    ErrCodeTutorialNotFound,
		Message: "Tutorial not found",
		Err:     ErrTutorialNotFound,
	}
}

func NewSlugConflictError(slug string) *TutorialError {
	return &TutorialError{
		Code:    ErrCodeSlugConflict,
		Message: fmt.Sprintf("A tutorial with slug '%s' already exists", slug),
		Err:     ErrSlugConflict,
	}
}

func NewInvalidCategoryError() *TutorialError {
	return &TutorialError{
		Code:    ErrCodeInvalidCategory,
		Message: "Referenced category does not exist",
		Err:     ErrInvalidCategory,
	}
}

func NewInvalidInputError(reason string) *TutorialError {
	return &TutorialError{
		Code:    ErrCodeInvalidInput,
		Message: reason,
		Err:     ErrInvalidInput,
	}
}
