package models

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is one run of the study timer. A session is active while
// EndTime is nil; stopping it fixes DurationMinutes and FocusScore. TaskID
// is nil for free study, in which case Note may carry a custom label.
type StudySession struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	TaskID          *uuid.UUID `json:"task_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	FocusScore      int        `json:"focus_score"`
	Note            string     `json:"note"`
	SessionType     string     `json:"session_type"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (s *StudySession) IsActive() bool {
	return s.EndTime == nil
}

type StartSessionRequest struct {
	TaskID         string `json:"task_id"`
	CustomTaskName string `json:"custom_task_name"`
}

type StopSessionRequest struct {
	SessionID  string `json:"session_id"`
	FocusScore int    `json:"focus_score"`
	Notes      string `json:"notes"`
}
