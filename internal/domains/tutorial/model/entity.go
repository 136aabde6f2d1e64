package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the tutorial difficulty level shown on the public site.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func IsValidDifficulty(d string) bool {
	switch Difficulty(d) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Tutorial is an education article. view_count is incremented only by the
// public view-tracking path, never by admin edits.
type Tutorial struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	CategoryID    uuid.UUID  `json:"category_id"`
	Difficulty    Difficulty `json:"difficulty"`
	Tags          []string   `json:"tags"`
	Published     bool       `json:"published"`
	ViewCount     int        `json:"view_count"`
	FeaturedImage *string    `json:"featured_image"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
