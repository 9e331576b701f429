package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"not found", fmt.Errorf("%w: task x", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"template", domain.ErrTemplateNotFound, http.StatusNotFound, ErrMsgTemplateNotFoundError},
		{"transition", fmt.Errorf("%w: %s", domain.ErrInvalidTransition, domain.ErrMsgAlreadyCompleted), http.StatusConflict, ErrMsgInvalidTransitionError},
		{"redemption", domain.ErrRedemptionUnavailable, http.StatusConflict, ErrMsgRedemptionUnavailableError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"quota", &domain.QuotaError{Kind: domain.QuotaKindMission}, http.StatusTooManyRequests, ErrMsgRejectedByQuotaError},
		{"persistence", domain.ErrPersistenceFailure, http.StatusServiceUnavailable, ErrMsgStorageUnavailableError},
		{"unknown", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	t.Run("quota error carries details", func(t *testing.T) {
		until := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
		qe := &domain.QuotaError{
			Kind:   domain.QuotaKindSideLocked,
			Reason: domain.ErrMsgSideQuestsLocked,
			Rank:   domain.RankF,
			Until:  &until,
		}
		w := httptest.NewRecorder()
		respondServiceError(w, httptest.NewRequest(http.MethodPost, "/", nil), "start quest", fmt.Errorf("wrapped: %w", qe))

		require.Equal(t, http.StatusTooManyRequests, w.Code)
		var resp QuotaErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.QuotaKindSideLocked, resp.Kind)
		assert.Equal(t, domain.RankF, resp.Rank)
		require.NotNil(t, resp.Until)
		assert.True(t, until.Equal(*resp.Until))
	})

	t.Run("client error includes detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := fmt.Errorf("%w: %s", domain.ErrInvalidTransition, domain.ErrMsgAlreadyStarted)
		respondServiceError(w, httptest.NewRequest(http.MethodPost, "/", nil), "start quest", err)

		require.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidTransitionError, resp.Error)
		assert.Contains(t, resp.Detail, domain.ErrMsgAlreadyStarted)
	})

	t.Run("server error hides detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), "status", assert.AnError)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}
