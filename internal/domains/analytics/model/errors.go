package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidWindow = "ANL001"
	ErrCodeInvalidInput  = "ANL002"
)

// Sentinel errors
var (
	ErrInvalidWindow = errors.New("invalid analytics window")
	ErrInvalidInput  = errors.New("invalid analytics input")
)

type AnalyticsError struct {
	Code    string
	Message string
	Err     error
}

func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewInvalidWindowError(reason string) *AnalyticsError {
	return &AnalyticsError{
		Code:    ErrCodeInvalidWindow,
		Message: reason,
		Err:     ErrInvalidWindow,
	}
}

func NewInvalidInputError(reason string) *AnalyticsError {
	return &AnalyticsError{
		Code:    ErrCodeInvalidInput,
		Message: reason,
		Err:     ErrInvalidInput,
	}
}
