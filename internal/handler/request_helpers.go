package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req AddSubTaskRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add sub-task"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	date := GetOptionalQueryParam(r, "date", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDateParam parses a YYYY-MM-DD query parameter at midnight in loc, or
// returns fallback when the parameter is absent.
// If ok is false, the HTTP response has already been written.
func getDateParam(w http.ResponseWriter, r *http.Request, paramName string, loc *time.Location, fallback time.Time) (time.Time, bool) {
	raw := GetOptionalQueryParam(r, paramName, "")
	if raw == "" {
		return fallback.In(loc), true
	}
	t, err := utils.ParseDayKey(raw, loc)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDate, paramName))
		return time.Time{}, false
	}
	return t, true
}
