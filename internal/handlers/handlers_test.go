package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuspulse-backend/internal/models"
)

// ─── Task Validation Tests ───

func TestTaskFromRequest_Valid(t *testing.T) {
	task, fieldErrors := taskFromRequest(models.TaskRequest{
		Title:       "Finish calculus problem set",
		Description: "Chapters 3 and 4",
		Priority:    2,
		DueDate:     "2026-04-01",
	})

	if len(fieldErrors) > 0 {
		t.Fatalf("Expected no field errors, got %v", fieldErrors)
	}
	if task.Title != "Finish calculus problem set" {
		t.Errorf("Unexpected title %q", task.Title)
	}
	if task.DueDate == nil {
		t.Fatal("Expected due date to be parsed")
	}
	if got := task.DueDate.Format("2006-01-02"); got != "2026-04-01" {
		t.Errorf("Expected due date 2026-04-01, got %s", got)
	}
}

func TestTaskFromRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   models.TaskRequest
		field string
	}{
		{"missing title", models.TaskRequest{Priority: 2}, "title"},
		{"priority too low", models.TaskRequest{Title: "x", Priority: 0}, "priority"},
		{"priority too high", models.TaskRequest{Title: "x", Priority: 4}, "priority"},
		{"bad due date", models.TaskRequest{Title: "x", Priority: 1, DueDate: "04/01/2026"}, "due_date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task, fieldErrors := taskFromRequest(tc.req)
			if task != nil {
				t.Error("Expected nil task on validation failure")
			}
			if _, ok := fieldErrors[tc.field]; !ok {
				t.Errorf("Expected error on field %q, got %v", tc.field, fieldErrors)
			}
		})
	}
}

func TestTaskFromRequest_OmittedDueDate(t *testing.T) {
	task, fieldErrors := taskFromRequest(models.TaskRequest{Title: "read notes", Priority: 1})
	if len(fieldErrors) > 0 {
		t.Fatalf("Expected no field errors, got %v", fieldErrors)
	}
	if task.DueDate != nil {
		t.Error("Expected nil due date when omitted")
	}
}

// ─── Response Helper Tests ───

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"message": "ok"})

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", ct)
	}

	var result map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "ok" {
		t.Errorf("Expected message 'ok', got %q", result["message"])
	}
}

func TestErrorRespEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("X-Request-ID", "req-123")

	resp := errorResp("NOT_FOUND", "Task not found", req)

	if resp.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %q", resp.Error.Code)
	}
	if resp.Error.Message != "Task not found" {
		t.Errorf("Unexpected message %q", resp.Error.Message)
	}
	if resp.Error.RequestID != "req-123" {
		t.Errorf("Expected request ID to be echoed, got %q", resp.Error.RequestID)
	}
}

func TestErrorRespWithFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)

	resp := errorRespWithFields("VALIDATION_ERROR", "Validation failed",
		map[string]string{"title": "Title is required"}, req)

	if resp.Error.Fields["title"] != "Title is required" {
		t.Errorf("Expected field error on title, got %v", resp.Error.Fields)
	}
}

// ─── Request Parsing Tests ───

func TestBatchRequestParsing(t *testing.T) {
	body := map[string]interface{}{
		"task_ids": []string{"not-a-uuid"},
	}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/batch-complete", bytes.NewReader(jsonBody))
	rr := httptest.NewRecorder()

	ids, ok := parseBatchIDs(rr, req)
	if ok {
		t.Error("Expected parse failure for malformed UUID")
	}
	if ids != nil {
		t.Errorf("Expected nil IDs, got %v", ids)
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestBatchRequestParsing_Empty(t *testing.T) {
	jsonBody, _ := json.Marshal(map[string]interface{}{"task_ids": []string{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/batch-delete", bytes.NewReader(jsonBody))
	rr := httptest.NewRecorder()

	if _, ok := parseBatchIDs(rr, req); ok {
		t.Error("Expected parse failure for empty task_ids")
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
