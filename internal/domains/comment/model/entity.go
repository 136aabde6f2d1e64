package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a visitor comment on a tutorial. Comments submitted through
// the public site start unapproved and stay hidden until moderated.
// ParentID links a reply to another comment on the same tutorial; when the
// parent is later deleted the reply simply renders as top-level.
type Comment struct {
	ID          uuid.UUID  `json:"id"`
	TutorialID  uuid.UUID  `json:"tutorial_id"`
	ParentID    *uuid.UUID `json:"parent_id"`
	AuthorName  string     `json:"author_name"`
	AuthorEmail string     `json:"author_email"`
	Content     string     `json:"content"`
	Approved    bool       `json:"approved"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CommentWithTutorial is the moderation-queue row shape. The tutorial
// title and slug let the dashboard link back to the page, and ReplyCount
// shows how much of a thread hangs off the comment.
type CommentWithTutorial struct {
	Comment
	TutorialTitle string `json:"tutorial_title"`
	TutorialSlug  string `json:"tutorial_slug"`
	ReplyCount    int    `json:"reply_count"`
}

// Moderation-queue status filters.
const (
	StatusAll      = "all"
	StatusPending  = "pending"
	StatusApproved = "approved"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusAll, StatusPending, StatusApproved:
		return true
	}
	return false
}
