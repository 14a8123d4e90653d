package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"campuspulse-backend/internal/assistant"
	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/models"
	"campuspulse-backend/internal/recommend"
	"campuspulse-backend/internal/repository"
	"campuspulse-backend/internal/studystats"
)

type DashboardHandler struct {
	taskRepo      *repository.TaskRepo
	moodRepo      *repository.MoodRepo
	resourceRepo  *repository.ResourceRepo
	sessionRepo   *repository.StudySessionRepo
	assistant     *assistant.Client
	recommendOpts recommend.Options
}

func NewDashboardHandler(
	taskRepo *repository.TaskRepo,
	moodRepo *repository.MoodRepo,
	resourceRepo *repository.ResourceRepo,
	sessionRepo *repository.StudySessionRepo,
	assistantClient *assistant.Client,
	opts recommend.Options,
) *DashboardHandler {
	return &DashboardHandler{
		taskRepo:      taskRepo,
		moodRepo:      moodRepo,
		resourceRepo:  resourceRepo,
		sessionRepo:   sessionRepo,
		assistant:     assistantClient,
		recommendOpts: opts,
	}
}

// Overview assembles everything the dashboard page needs in one
// response: task counts, study numbers, recommendations, urgent
// tasks, mood and a learning assessment.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	total, completed, err := h.taskRepo.Counts(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load task counts", r))
		return
	}

	completionRate := 0.0
	if total > 0 {
		completionRate = float64(completed) / float64(total) * 100
	}

	urgent, err := h.taskRepo.RecentPending(r.Context(), userID, 3)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load tasks", r))
		return
	}

	allTasks, err := h.taskRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load tasks", r))
		return
	}

	catalogue, err := h.resourceRepo.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load resources", r))
		return
	}
	recommendations := recommend.Recommend(allTasks, catalogue, h.recommendOpts)

	sessions, err := h.sessionRepo.ListEnded(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load sessions", r))
		return
	}
	tasksByID, err := h.taskRepo.MapByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load tasks", r))
		return
	}
	studyReport := studystats.Aggregate(sessions, tasksByID, time.Now().UTC())

	moodScore := 3
	var latestMood *models.MoodLog
	mood, err := h.moodRepo.Latest(r.Context(), userID)
	if err == nil {
		latestMood = mood
		moodScore = mood.Score
	} else if !errors.Is(err, pgx.ErrNoRows) {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load mood", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks": map[string]interface{}{
			"total":           total,
			"completed":       completed,
			"pending":         total - completed,
			"completion_rate": completionRate,
			"urgent":          urgent,
		},
		"study":           studyReport.Stats,
		"recommendations": recommendations,
		"mood":            latestMood,
		"tips":            assistant.HealthTips(moodScore),
		"analysis":        h.assistant.AnalyzeLearning(completionRate),
	})
}
