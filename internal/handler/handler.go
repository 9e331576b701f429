package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Ascendant_Go/internal/catalog"
	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/engine"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// EngineHandlers exposes the progression engine over HTTP
type EngineHandlers struct {
	service engine.Service
	catalog *catalog.Catalog
	loc     *time.Location
	now     func() time.Time
}

// NewEngineHandlers creates the engine handlers. Date query parameters are read in loc.
func NewEngineHandlers(service engine.Service, cat *catalog.Catalog, loc *time.Location) *EngineHandlers {
	if loc == nil {
		loc = time.Local
	}
	return &EngineHandlers{
		service: service,
		catalog: cat,
		loc:     loc,
		now:     time.Now,
	}
}

// HandleGetStatus returns the user's level, rank, modifiers and quota usage
func (h *EngineHandlers) HandleGetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := h.service.Status(r.Context())
		if err != nil {
			respondServiceError(w, r, "status", err)
			return
		}
		respondJSON(w, http.StatusOK, status)
	}
}

// HandleReconcile applies overdue deadlines and calendar resets as of the server clock
func (h *EngineHandlers) HandleReconcile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		res, err := h.service.ReconcileAt(r.Context(), h.now())
		if err != nil {
			respondServiceError(w, r, "reconcile", err)
			return
		}

		log.Info(MsgReconcileCompleted, "version", res.Version, "missed", len(res.Missed))
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetCatalog returns the static quest, mission and redemption content
func (h *EngineHandlers) HandleGetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.catalog)
	}
}

// HandleDeleteItem removes a task, quest or mission. The kind comes from the route.
func (h *EngineHandlers) HandleDeleteItem(kind domain.ItemKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !kind.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemKind)
			return
		}

		id := chi.URLParam(r, "id")
		if err := h.service.DeleteItem(r.Context(), kind, id); err != nil {
			respondServiceError(w, r, "delete "+string(kind), err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgItemDeleted, "kind", kind, "id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}
