package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/models"
	"campuspulse-backend/internal/repository"
	"campuspulse-backend/internal/studystats"
	"campuspulse-backend/internal/websocket"
)

type StudyHandler struct {
	sessionRepo *repository.StudySessionRepo
	taskRepo    *repository.TaskRepo
	pubsub      *redis.Client
}

func NewStudyHandler(sessionRepo *repository.StudySessionRepo, taskRepo *repository.TaskRepo, pubsub *redis.Client) *StudyHandler {
	return &StudyHandler{
		sessionRepo: sessionRepo,
		taskRepo:    taskRepo,
		pubsub:      pubsub,
	}
}

func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	session := &models.StudySession{
		UserID:      userID,
		Note:        req.CustomTaskName,
		SessionType: "focus",
	}

	if req.TaskID != "" {
		taskID, err := uuid.Parse(req.TaskID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid task ID", r))
			return
		}
		if _, err := h.taskRepo.GetByID(r.Context(), taskID, userID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Task not found", r))
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load task", r))
			return
		}
		session.TaskID = &taskID
	}

	if err := h.sessionRepo.Start(r.Context(), session); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusConflict, errorResp("CONFLICT", "A study session is already running", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to start session", r))
		return
	}

	go websocket.PublishSessionEvent(context.Background(), h.pubsub, userID, websocket.SessionEvent{
		Type:      "session_started",
		SessionID: session.ID,
		TaskLabel: session.Note,
		At:        session.StartTime,
	})

	writeJSON(w, http.StatusCreated, session)
}

func (h *StudyHandler) Stop(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.StopSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid session ID", r))
		return
	}

	if req.FocusScore < 1 || req.FocusScore > 5 {
		req.FocusScore = 3
	}

	session, err := h.sessionRepo.Stop(r.Context(), sessionID, userID, req.FocusScore, req.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No running session with this ID", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to stop session", r))
		return
	}

	go websocket.PublishSessionEvent(context.Background(), h.pubsub, userID, websocket.SessionEvent{
		Type:      "session_stopped",
		SessionID: session.ID,
		Minutes:   session.DurationMinutes,
		At:        time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, session)
}

func (h *StudyHandler) Active(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	session, err := h.sessionRepo.Active(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusOK, map[string]interface{}{"active": nil})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load session", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"active": session})
}

// Stats aggregates every finished session into dashboard numbers,
// chart slices and a 7 day trend.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

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

	report := studystats.Aggregate(sessions, tasksByID, time.Now().UTC())
	writeJSON(w, http.StatusOK, report)
}

func (h *StudyHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	sessions, err := h.sessionRepo.ListEndedPage(r.Context(), userID, perPage, (page-1)*perPage)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load sessions", r))
		return
	}

	total, err := h.sessionRepo.CountEnded(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to count sessions", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

func (h *StudyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid session ID", r))
		return
	}

	deleted, err := h.sessionRepo.Delete(r.Context(), sessionID, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete session", r))
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}
