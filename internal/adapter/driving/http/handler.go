package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ericfisherdev/skylands/internal/application"
	"github.com/ericfisherdev/skylands/internal/catalog"
	"github.com/ericfisherdev/skylands/internal/domain/port/driven"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// Handler is the HTTP driving adapter that serves the app's screens.
type Handler struct {
	places *application.PlaceStore
	panel  *application.PanelCoordinator
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. panel is the
// process-wide coordinator owned by the composition root.
func NewHandler(
	places *application.PlaceStore,
	panel *application.PanelCoordinator,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		places: places,
		panel:  panel,
		logger: logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with request id, logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/places", h.ListPlaces)
	mux.HandleFunc("GET /api/v1/places/{id}", h.GetPlace)
	mux.HandleFunc("GET /api/v1/places/{id}/share", h.SharePlace)
	mux.HandleFunc("GET /api/v1/facts", h.ListFacts)
	mux.HandleFunc("GET /api/v1/facts/{index}/share", h.ShareFact)

	mux.HandleFunc("GET /api/v1/saved", h.ListSaved)
	mux.HandleFunc("POST /api/v1/saved", h.SavePlace)
	mux.HandleFunc("GET /api/v1/saved/{title}", h.IsSaved)
	mux.HandleFunc("DELETE /api/v1/saved/{title}", h.RemoveSaved)

	mux.HandleFunc("GET /api/v1/panel", h.PanelState)
	mux.HandleFunc("POST /api/v1/panel/claim", h.ClaimPanel)
	mux.HandleFunc("POST /api/v1/panel/opened", h.MarkPanelOpened)

	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// ListPlaces returns the bundled catalog of places.
func (h *Handler) ListPlaces(w http.ResponseWriter, _ *http.Request) {
	places := catalog.Places()
	resp := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, toPlaceResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPlace returns a catalog place along with whether it is bookmarked.
func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	p, ok := catalog.PlaceByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "place not found")
		return
	}

	saved, err := h.places.IsSaved(r.Context(), p.Title)
	if err != nil {
		h.writeStoreError(w, r, "failed to check saved status", err)
		return
	}

	writeJSON(w, http.StatusOK, PlaceDetailResponse{
		PlaceResponse: toPlaceResponse(p),
		Saved:         saved,
	})
}

// SharePlace returns the share payload for a catalog place.
func (h *Handler) SharePlace(w http.ResponseWriter, r *http.Request) {
	p, ok := catalog.PlaceByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "place not found")
		return
	}

	writeJSON(w, http.StatusOK, toPlaceShareResponse(p))
}

// ListFacts returns the bundled facts in carousel order.
func (h *Handler) ListFacts(w http.ResponseWriter, _ *http.Request) {
	facts := catalog.Facts()
	resp := make([]FactResponse, 0, len(facts))
	for i, f := range facts {
		resp = append(resp, FactResponse{Index: i, Title: f.Title, Description: f.Description})
	}

	writeJSON(w, http.StatusOK, resp)
}

// ShareFact returns the share payload for the fact at the given carousel index.
func (h *Handler) ShareFact(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fact index")
		return
	}

	writeJSON(w, http.StatusOK, toFactShareResponse(catalog.FactAt(index)))
}

// ListSaved returns all bookmarked places in the order they were saved.
func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	places, err := h.places.GetAll(r.Context())
	if err != nil {
		h.writeStoreError(w, r, "failed to list saved places", err)
		return
	}

	resp := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, toPlaceResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SavePlace bookmarks a place. Saving a title that is already bookmarked
// succeeds without changing the stored record.
func (h *Handler) SavePlace(w http.ResponseWriter, r *http.Request) {
	var req SavePlaceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.places.Save(r.Context(), req.toPlaceDraft()); err != nil {
		h.writeStoreError(w, r, "failed to save place", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// IsSaved reports whether a title is bookmarked.
func (h *Handler) IsSaved(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	saved, err := h.places.IsSaved(r.Context(), title)
	if err != nil {
		h.writeStoreError(w, r, "failed to check saved status", err)
		return
	}

	writeJSON(w, http.StatusOK, SavedStatusResponse{Title: title, Saved: saved})
}

// RemoveSaved removes a bookmark by title. Unknown titles are not an error.
func (h *Handler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	if err := h.places.Remove(r.Context(), r.PathValue("title")); err != nil {
		h.writeStoreError(w, r, "failed to remove place", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PanelState reports whether the navigation panel should still auto-open.
func (h *Handler) PanelState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PanelStateResponse{
		ShouldBeInitiallyOpen: h.panel.ShouldBeInitiallyOpen(),
	})
}

// ClaimPanel consumes the auto-open flag. Only the first call per process
// receives open=true.
func (h *Handler) ClaimPanel(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PanelClaimResponse{Open: h.panel.ClaimInitialOpen()})
}

// MarkPanelOpened records that the panel has been opened or suppressed.
func (h *Handler) MarkPanelOpened(w http.ResponseWriter, _ *http.Request) {
	h.panel.MarkPanelAsOpened()
	w.WriteHeader(http.StatusNoContent)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   nowRFC3339(),
	})
}

// writeStoreError maps PlaceStore errors to HTTP responses. Caller errors are
// not logged; storage and decoding failures are.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidTitle):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, driven.ErrStorageUnavailable):
		h.logger.Error(msg, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	case errors.Is(err, application.ErrDeserialization):
		h.logger.Error(msg, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "saved places are corrupted")
		return
	}

	h.logger.Error(msg, "request_id", RequestIDFromContext(r.Context()), "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
