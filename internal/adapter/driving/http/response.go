package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/skylands/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// CoordinatesResponse is the JSON representation of a geographic point.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceResponse is the JSON representation of a place.
type PlaceResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Coordinates CoordinatesResponse `json:"coordinates"`
	ImageName   string              `json:"image_name"`
	MapURL      string              `json:"map_url"`
}

// PlaceDetailResponse is a catalog place enriched with its bookmark state.
type PlaceDetailResponse struct {
	PlaceResponse
	Saved bool `json:"saved"`
}

// SavePlaceRequest is the JSON body for the save bookmark endpoint. It carries
// no id; the stored id is always the title.
type SavePlaceRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Coordinates CoordinatesResponse `json:"coordinates"`
	ImageName   string              `json:"image_name"`
}

// SavedStatusResponse reports whether a title is bookmarked.
type SavedStatusResponse struct {
	Title string `json:"title"`
	Saved bool   `json:"saved"`
}

// FactResponse is the JSON representation of a fact.
type FactResponse struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ShareResponse is the content handed to the platform share sheet.
type ShareResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
	HTML    string `json:"html"`
}

// PanelStateResponse reports whether the navigation panel should auto-open.
type PanelStateResponse struct {
	ShouldBeInitiallyOpen bool `json:"should_be_initially_open"`
}

// PanelClaimResponse reports whether this caller should open the panel now.
type PanelClaimResponse struct {
	Open bool `json:"open"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toPlaceResponse converts a domain Place to its JSON response representation.
func toPlaceResponse(p model.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Coordinates: CoordinatesResponse{
			Latitude:  p.Coordinates.Latitude,
			Longitude: p.Coordinates.Longitude,
		},
		ImageName: p.ImageName,
		MapURL:    p.MapURL(),
	}
}

// toPlaceDraft converts a save request into a domain PlaceDraft.
func (req SavePlaceRequest) toPlaceDraft() model.PlaceDraft {
	return model.PlaceDraft{
		Title:       req.Title,
		Description: req.Description,
		Coordinates: model.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		},
		ImageName: req.ImageName,
	}
}

// toPlaceShareResponse builds the share payload for a place.
func toPlaceShareResponse(p model.Place) ShareResponse {
	md := "**" + p.ShareTitle() + "**\n\n" + p.Description + "\n\n[View on map](" + p.MapURL() + ")"
	return ShareResponse{
		Title:   p.ShareTitle(),
		Message: p.ShareMessage(),
		URL:     p.MapURL(),
		HTML:    RenderMarkdown(md),
	}
}

// toFactShareResponse builds the share payload for a fact.
func toFactShareResponse(f model.Fact) ShareResponse {
	md := "Did you know?\n\n**" + f.Title + "**\n\n" + f.Description + "\n\n_Discover more facts about New Zealand!_"
	return ShareResponse{
		Title:   f.Title,
		Message: f.ShareMessage(),
		HTML:    RenderMarkdown(md),
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
