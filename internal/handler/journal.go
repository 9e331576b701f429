package handler

import (
	"net/http"
)

// HandleDailyJournal evaluates the reward journal for ?date=YYYY-MM-DD, defaulting to today
func (h *EngineHandlers) HandleDailyJournal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := getDateParam(w, r, "date", h.loc, h.now())
		if !ok {
			return
		}

		report, err := h.service.DailyJournal(r.Context(), date)
		if err != nil {
			respondServiceError(w, r, "daily journal", err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleWeeklyJournal evaluates the reward journal for the week containing ?week=YYYY-MM-DD
func (h *EngineHandlers) HandleWeeklyJournal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, ok := getDateParam(w, r, "week", h.loc, h.now())
		if !ok {
			return
		}

		report, err := h.service.WeeklyJournal(r.Context(), week)
		if err != nil {
			respondServiceError(w, r, "weekly journal", err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}
