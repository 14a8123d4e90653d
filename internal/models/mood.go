package models

import (
	"time"

	"github.com/google/uuid"
)

// MoodLog holds one mood entry per user per calendar day.
type MoodLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     int       `json:"score"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type MoodRequest struct {
	Score int    `json:"score"`
	Note  string `json:"note"`
}
