package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/models"
	"campuspulse-backend/internal/repository"
)

type TaskHandler struct {
	taskRepo *repository.TaskRepo
}

func NewTaskHandler(taskRepo *repository.TaskRepo) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var (
		tasks []models.Task
		err   error
	)
	if r.URL.Query().Get("status") == models.TaskStatusPending {
		tasks, err = h.taskRepo.ListPending(r.Context(), userID)
	} else {
		tasks, err = h.taskRepo.ListByUser(r.Context(), userID)
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load tasks", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	task, fieldErrors := taskFromRequest(req)
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fieldErrors, r))
		return
	}
	task.UserID = userID

	if err := h.taskRepo.Create(r.Context(), task); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create task", r))
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid task ID", r))
		return
	}

	task, err := h.taskRepo.GetByID(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Task not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load task", r))
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid task ID", r))
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	task, fieldErrors := taskFromRequest(req)
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fieldErrors, r))
		return
	}

	existing, err := h.taskRepo.GetByID(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Task not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load task", r))
		return
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Priority = task.Priority
	existing.DueDate = task.DueDate

	if err := h.taskRepo.Update(r.Context(), existing); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update task", r))
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
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

	if err := h.taskRepo.SetStatus(r.Context(), taskID, userID, models.TaskStatusCompleted); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to complete task", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task completed"})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid task ID", r))
		return
	}

	deleted, err := h.taskRepo.Delete(r.Context(), taskID, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete task", r))
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Task not found", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

func (h *TaskHandler) BatchComplete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	ids, ok := parseBatchIDs(w, r)
	if !ok {
		return
	}

	changed, err := h.taskRepo.BatchComplete(r.Context(), userID, ids)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to complete tasks", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"completed": changed})
}

func (h *TaskHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	ids, ok := parseBatchIDs(w, r)
	if !ok {
		return
	}

	deleted, err := h.taskRepo.BatchDelete(r.Context(), userID, ids)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete tasks", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": deleted})
}

func parseBatchIDs(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	var req models.BatchTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return nil, false
	}
	if len(req.TaskIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "task_ids is required", r))
		return nil, false
	}

	ids := make([]uuid.UUID, 0, len(req.TaskIDs))
	for _, raw := range req.TaskIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid task ID: "+raw, r))
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func taskFromRequest(req models.TaskRequest) (*models.Task, map[string]string) {
	fieldErrors := make(map[string]string)

	if req.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if req.Priority < 1 || req.Priority > 3 {
		fieldErrors["priority"] = "Priority must be between 1 and 3"
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			fieldErrors["due_date"] = "Due date must be YYYY-MM-DD"
		} else {
			dueDate = &parsed
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
	}, nil
}
