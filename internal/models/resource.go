package models

import (
	"time"

	"github.com/google/uuid"
)

// LearningResource is one catalogue entry. Keywords is a comma-separated
// list; Views counts how often users opened the link.
type LearningResource struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Keywords    string    `json:"keywords"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

type SuggestResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Keywords    string `json:"keywords"`
}

type ResourceStats struct {
	Total      int            `json:"total"`
	Today      int            `json:"today"`
	TotalViews int            `json:"total_views"`
	Categories map[string]int `json:"categories"`
}
