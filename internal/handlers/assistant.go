package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"campuspulse-backend/internal/assistant"
	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/models"
	"campuspulse-backend/internal/repository"
)

type AssistantHandler struct {
	client   *assistant.Client
	chatRepo *repository.ChatRepo
	taskRepo *repository.TaskRepo
}

func NewAssistantHandler(client *assistant.Client, chatRepo *repository.ChatRepo, taskRepo *repository.TaskRepo) *AssistantHandler {
	return &AssistantHandler{client: client, chatRepo: chatRepo, taskRepo: taskRepo}
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"message": "Message is required"}, r))
		return
	}

	reply := h.client.Answer(message)

	msg := &models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: reply,
	}
	if err := h.chatRepo.Save(r.Context(), msg); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save message", r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

func (h *AssistantHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	messages, err := h.chatRepo.History(r.Context(), userID, 50)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load history", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// Analysis grades the user's learning from their task completion rate.
func (h *AssistantHandler) Analysis(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, h.client.AnalyzeLearning(completionRate))
}
