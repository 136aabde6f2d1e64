package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MaxAuthorNameLength = 100
	MaxContentLength    = 2000
)

// CreateCommentRequest is the public comment-submission payload.
type CreateCommentRequest struct {
	AuthorName  string     `json:"author_name"`
	AuthorEmail string     `json:"author_email"`
	Content     string     `json:"content"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorName,
			validation.Required.Error("author name is required"),
			validation.Length(1, MaxAuthorNameLength).Error("author name must be 1-100 characters"),
		),
		validation.Field(&r.AuthorEmail,
			validation.Required.Error("author email is required"),
			is.Email.Error("author email must be a valid email address"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, MaxContentLength).Error("content must be 1-2000 characters"),
		),
	)
}

// AdminCreateCommentRequest is the admin comment payload. Approved lets
// an admin publish the comment at creation time; left false it queues
// for moderation like any other.
type AdminCreateCommentRequest struct {
	CreateCommentRequest
	Approved bool `json:"approved"`
}

func (r AdminCreateCommentRequest) Validate() error {
	return r.CreateCommentRequest.Validate()
}

// ListCommentsQuery filters the moderation queue.
type ListCommentsQuery struct {
	Status     string `form:"status"`
	TutorialID string `form:"tutorial_id"`
}
