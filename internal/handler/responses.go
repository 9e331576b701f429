package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Detail carries the domain error
// text for client mistakes; server faults never expose it.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// QuotaErrorResponse is returned with 429 when the rank quota refuses an action
type QuotaErrorResponse struct {
	Error  string      `json:"error"`
	Kind   string      `json:"kind"`
	Reason string      `json:"reason"`
	Rank   domain.Rank `json:"rank"`
	Limit  int         `json:"limit"`
	Used   int         `json:"used"`
	Until  *time.Time  `json:"until,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed engine call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var qe *domain.QuotaError
	if errors.As(err, &qe) {
		log.Info(LogMsgServiceError, "operation", opName, "error", err)
		respondJSON(w, http.StatusTooManyRequests, QuotaErrorResponse{
			Error:  ErrMsgRejectedByQuotaError,
			Kind:   qe.Kind,
			Reason: qe.Reason,
			Rank:   qe.Rank,
			Limit:  qe.Limit,
			Used:   qe.Used,
			Until:  qe.Until,
		})
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	resp := ErrorResponse{Error: msg}
	if status < http.StatusInternalServerError {
		log.Info(LogMsgServiceError, "operation", opName, "status", status, "error", err)
		resp.Detail = err.Error()
	} else {
		log.Error(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrRejectedByQuota):
		return http.StatusTooManyRequests, ErrMsgRejectedByQuotaError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, ErrMsgTemplateNotFoundError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransitionError
	case errors.Is(err, domain.ErrRedemptionUnavailable):
		return http.StatusConflict, ErrMsgRedemptionUnavailableError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrPersistenceFailure):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
