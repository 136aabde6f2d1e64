package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCommentNotFound  = "CMT001"
	ErrCodeTutorialNotFound = "CMT002"
	ErrCodeParentNotFound   = "CMT003"
	ErrCodeParentMismatch   = "CMT004"
	ErrCodeInvalidInput     = "CMT005"
)

// Sentinel errors
var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrTutorialNotFound = errors.New("tutorial not found")
	ErrParentNotFound   = errors.New("parent comment not found")
	ErrParentMismatch   = errors.New("parent comment belongs to another tutorial")
	ErrInvalidInput     = errors.New("invalid comment input")
)

type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found",
		Err:     ErrCommentNotFound,
	}
}

func NewTutorialNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeTutorialNotFound,
		Message: "Tutorial not found",
		Err:     ErrTutorialNotFound,
	}
}

func NewParentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeParentNotFound,
		Message: "Parent comment not found",
		Err:     ErrParentNotFound,
	}
}

func NewParentMismatchError() *CommentError {
	return &CommentError{
		Code:    ErrCodeParentMismatch,
		Message: "Parent comment belongs to a different tutorial",
		Err:     ErrParentMismatch,
	}
}

func NewInvalidInputError(reason string) *CommentError {
	return &CommentError{
		Code:    ErrCodeInvalidInput,
		Message: reason,
		Err:     ErrInvalidInput,
	}
}
