package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"campuspulse-backend/internal/assistant"
	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/models"
	"campuspulse-backend/internal/repository"
)

type MoodHandler struct {
	moodRepo *repository.MoodRepo
}

func NewMoodHandler(moodRepo *repository.MoodRepo) *MoodHandler {
	return &MoodHandler{moodRepo: moodRepo}
}

// Log records today's mood. Logging twice on the same day replaces
// the earlier entry.
func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Score < 1 || req.Score > 5 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"score": "Score must be between 1 and 5"}, r))
		return
	}

	log := &models.MoodLog{
		UserID: userID,
		Score:  req.Score,
		Note:   req.Note,
	}

	if err := h.moodRepo.Upsert(r.Context(), log); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to log mood", r))
		return
	}

	writeJSON(w, http.StatusCreated, log)
}

func (h *MoodHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	log, err := h.moodRepo.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No mood logged yet", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load mood", r))
		return
	}

	writeJSON(w, http.StatusOK, log)
}

func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	logs, err := h.moodRepo.ListByUser(r.Context(), userID, 30)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load mood history", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"moods": logs})
}

// Tips returns wellbeing suggestions keyed off the latest mood.
// With no mood logged the middle bucket is used.
func (h *MoodHandler) Tips(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	score := 3
	log, err := h.moodRepo.Latest(r.Context(), userID)
	if err == nil {
		score = log.Score
	} else if !errors.Is(err, pgx.ErrNoRows) {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load mood", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mood_score": score,
		"tips":       assistant.HealthTips(score),
	})
}
