package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// TasksResponse lists standalone tasks
type TasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// HandleListTasks returns all standalone tasks
func (h *EngineHandlers) HandleListTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := h.service.ListTasks(r.Context())
		if err != nil {
			respondServiceError(w, r, "list tasks", err)
			return
		}
		if tasks == nil {
			tasks = []domain.Task{}
		}
		respondJSON(w, http.StatusOK, TasksResponse{Tasks: tasks})
	}
}

// HandleCreateTask creates a standalone task
func (h *EngineHandlers) HandleCreateTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTaskInput
		if err := DecodeAndValidateRequest(r, w, &req, "Create task"); err != nil {
			return
		}

		task, err := h.service.CreateTask(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "create task", err)
			return
		}

		logger.FromContext(r.Context()).Info("Task created", "id", task.ID, "difficulty", task.Difficulty)
		respondJSON(w, http.StatusCreated, task)
	}
}

// HandleCompleteTask completes a standalone task and returns the reward outcome
func (h *EngineHandlers) HandleCompleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, err := h.service.CompleteTask(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "complete task", err)
			return
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}
