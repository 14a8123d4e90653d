package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/models"
	"campuspulse-backend/internal/recommend"
	"campuspulse-backend/internal/repository"
)

type ResourceHandler struct {
	resourceRepo  *repository.ResourceRepo
	taskRepo      *repository.TaskRepo
	cache         *redis.Client
	recommendOpts recommend.Options
	cacheTTL      time.Duration
}

func NewResourceHandler(resourceRepo *repository.ResourceRepo, taskRepo *repository.TaskRepo, cache *redis.Client, opts recommend.Options, cacheTTL time.Duration) *ResourceHandler {
	return &ResourceHandler{
		resourceRepo:  resourceRepo,
		taskRepo:      taskRepo,
		cache:         cache,
		recommendOpts: opts,
		cacheTTL:      cacheTTL,
	}
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceRepo.ListRecent(r.Context(), 100)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load resources", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resources": resources})
}

// Recommended scores the catalogue against the user's pending tasks.
// Results are cached per user so repeated dashboard loads stay cheap.
func (h *ResourceHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	cacheKey := "recommend:" + userID.String()

	if cached, err := h.cache.Get(r.Context(), cacheKey).Result(); err == nil {
		var resources []models.LearningResource
		if json.Unmarshal([]byte(cached), &resources) == nil {
			writeJSON(w, http.StatusOK, map[string]interface{}{"resources": resources, "cached": true})
			return
		}
	}

	// Full task history, completed included: finished work still says
	// what the user studies.
	tasks, err := h.taskRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load tasks", r))
		return
	}

	catalogue, err := h.resourceRepo.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load resources", r))
		return
	}

	resources := recommend.Recommend(tasks, catalogue, h.recommendOpts)

	if data, err := json.Marshal(resources); err == nil {
		h.cache.Set(r.Context(), cacheKey, data, h.cacheTTL)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resources": resources, "cached": false})
}

// Suggest lets users submit a resource of their own. Duplicate URLs
// are rejected rather than silently merged.
func (h *ResourceHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	fieldErrors := make(map[string]string)
	if req.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if req.URL == "" {
		fieldErrors["url"] = "URL is required"
	}
	if req.Category == "" {
		fieldErrors["category"] = "Category is required"
	}
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fieldErrors, r))
		return
	}

	res := &models.LearningResource{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Category:    req.Category,
		Keywords:    req.Keywords,
	}

	inserted, err := h.resourceRepo.UpsertByURL(r.Context(), res)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save resource", r))
		return
	}
	if !inserted {
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", "A resource with this URL already exists", r))
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// View bumps the resource's popularity counter.
func (h *ResourceHandler) View(w http.ResponseWriter, r *http.Request) {
	resourceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid resource ID", r))
		return
	}

	views, err := h.resourceRepo.IncrementViews(r.Context(), resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Resource not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to record view", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"views": views})
}

func (h *ResourceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.resourceRepo.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load stats", r))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
