package handler

import (
	"net/http"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// RedemptionStartedResponse lists the recovery quests of the new batch
type RedemptionStartedResponse struct {
	Message string         `json:"message"`
	Quests  []domain.Quest `json:"quests"`
}

// AttemptRedemptionRequest reports a redemption challenge result
type AttemptRedemptionRequest struct {
	Passed *bool `json:"passed" validate:"required"`
}

// AttemptRedemptionResponse carries the status after an attempt
type AttemptRedemptionResponse struct {
	Message string        `json:"message"`
	Status  domain.Status `json:"status"`
}

// HandleStartRedemption creates the recovery quest batch for a cursed user
func (h *EngineHandlers) HandleStartRedemption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quests, err := h.service.StartRedemption(r.Context())
		if err != nil {
			respondServiceError(w, r, "start redemption", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgRedemptionStarted, "quests", len(quests))
		respondJSON(w, http.StatusCreated, RedemptionStartedResponse{
			Message: MsgRedemptionStarted,
			Quests:  quests,
		})
	}
}

// HandleAbandonRedemption drops the pending recovery batch
func (h *EngineHandlers) HandleAbandonRedemption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.AbandonRedemption(r.Context()); err != nil {
			respondServiceError(w, r, "abandon redemption", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgRedemptionAbandoned)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRedemptionAbandoned})
	}
}

// HandleAttemptRedemption records a single redemption challenge result
func (h *EngineHandlers) HandleAttemptRedemption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AttemptRedemptionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Attempt redemption"); err != nil {
			return
		}

		status, err := h.service.AttemptRedemption(r.Context(), *req.Passed)
		if err != nil {
			respondServiceError(w, r, "attempt redemption", err)
			return
		}

		msg := MsgRedemptionNotPassed
		if *req.Passed {
			msg = MsgRedemptionPassed
		}
		logger.FromContext(r.Context()).Info(msg, "version", status.Version)
		respondJSON(w, http.StatusOK, AttemptRedemptionResponse{Message: msg, Status: status})
	}
}
