package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// QuestsResponse lists quests with their sub-tasks
type QuestsResponse struct {
	Quests []domain.Quest `json:"quests"`
}

// CreateQuestFromCatalogRequest instantiates a predefined quest
type CreateQuestFromCatalogRequest struct {
	TemplateID string     `json:"template_id" validate:"required,max=100"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// AddSubTaskRequest appends a sub-task to a quest
type AddSubTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// HandleListQuests returns all quests
func (h *EngineHandlers) HandleListQuests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quests, err := h.service.ListQuests(r.Context())
		if err != nil {
			respondServiceError(w, r, "list quests", err)
			return
		}
		if quests == nil {
			quests = []domain.Quest{}
		}
		respondJSON(w, http.StatusOK, QuestsResponse{Quests: quests})
	}
}

// HandleCreateQuest creates a custom quest with optional sub-task titles
func (h *EngineHandlers) HandleCreateQuest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateQuestInput
		if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
			return
		}

		quest, err := h.service.CreateQuest(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "create quest", err)
			return
		}

		logger.FromContext(r.Context()).Info("Quest created", "id", quest.ID, "main", quest.IsMainQuest)
		respondJSON(w, http.StatusCreated, quest)
	}
}

// HandleCreateQuestFromCatalog creates a quest from a catalog template
func (h *EngineHandlers) HandleCreateQuestFromCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuestFromCatalogRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create quest from catalog"); err != nil {
			return
		}

		quest, err := h.service.CreateQuestFromCatalog(r.Context(), req.TemplateID, req.Deadline)
		if err != nil {
			respondServiceError(w, r, "create quest from catalog", err)
			return
		}

		logger.FromContext(r.Context()).Info("Quest created", "id", quest.ID, "template", req.TemplateID)
		respondJSON(w, http.StatusCreated, quest)
	}
}

// HandleStartQuest marks a quest as started, subject to the rank quota
func (h *EngineHandlers) HandleStartQuest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quest, err := h.service.StartQuest(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "start quest", err)
			return
		}
		respondJSON(w, http.StatusOK, quest)
	}
}

// HandleCompleteQuest completes a quest once all its sub-tasks are done
func (h *EngineHandlers) HandleCompleteQuest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, err := h.service.CompleteQuest(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "complete quest", err)
			return
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleAddSubTask appends a sub-task to an open quest
func (h *EngineHandlers) HandleAddSubTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddSubTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add sub-task"); err != nil {
			return
		}

		task, err := h.service.AddSubTask(r.Context(), chi.URLParam(r, "id"), req.Title)
		if err != nil {
			respondServiceError(w, r, "add sub-task", err)
			return
		}
		respondJSON(w, http.StatusCreated, task)
	}
}

// HandleCompleteSubTask completes one sub-task of a quest
func (h *EngineHandlers) HandleCompleteSubTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, err := h.service.CompleteSubTask(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskID"))
		if err != nil {
			respondServiceError(w, r, "complete sub-task", err)
			return
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}
