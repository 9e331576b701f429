package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// MissionsResponse lists missions
type MissionsResponse struct {
	Missions []domain.Mission `json:"missions"`
}

// CreateMissionFromCatalogRequest instantiates the catalog mission for the
// current rank and the given day
type CreateMissionFromCatalogRequest struct {
	Day      int        `json:"day" validate:"required,min=1"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// HandleListMissions returns all missions
func (h *EngineHandlers) HandleListMissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missions, err := h.service.ListMissions(r.Context())
		if err != nil {
			respondServiceError(w, r, "list missions", err)
			return
		}
		if missions == nil {
			missions = []domain.Mission{}
		}
		respondJSON(w, http.StatusOK, MissionsResponse{Missions: missions})
	}
}

// HandleCreateMission creates a custom mission
func (h *EngineHandlers) HandleCreateMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateMissionInput
		if err := DecodeAndValidateRequest(r, w, &req, "Create mission"); err != nil {
			return
		}

		mission, err := h.service.CreateMission(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "create mission", err)
			return
		}

		logger.FromContext(r.Context()).Info("Mission created", "id", mission.ID, "rank", mission.Rank, "day", mission.Day)
		respondJSON(w, http.StatusCreated, mission)
	}
}

// HandleCreateMissionFromCatalog creates the catalog mission for the current rank
func (h *EngineHandlers) HandleCreateMissionFromCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMissionFromCatalogRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create mission from catalog"); err != nil {
			return
		}

		mission, err := h.service.CreateMissionFromCatalog(r.Context(), req.Day, req.Deadline)
		if err != nil {
			respondServiceError(w, r, "create mission from catalog", err)
			return
		}

		logger.FromContext(r.Context()).Info("Mission created", "id", mission.ID, "template", mission.TemplateID)
		respondJSON(w, http.StatusCreated, mission)
	}
}

// HandleStartMission marks a mission as started, subject to the rank quota
func (h *EngineHandlers) HandleStartMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mission, err := h.service.StartMission(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "start mission", err)
			return
		}
		respondJSON(w, http.StatusOK, mission)
	}
}

// HandleCompleteMissionStep records one step of a mission by index
func (h *EngineHandlers) HandleCompleteMissionStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil || index < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidStepIndex)
			return
		}

		mission, err := h.service.CompleteMissionStep(r.Context(), chi.URLParam(r, "id"), index)
		if err != nil {
			respondServiceError(w, r, "complete mission step", err)
			return
		}
		respondJSON(w, http.StatusOK, mission)
	}
}

// HandleCompleteMission completes a mission once every step is recorded
func (h *EngineHandlers) HandleCompleteMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, err := h.service.CompleteMission(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "complete mission", err)
			return
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}
