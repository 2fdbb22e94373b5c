package model

import (
	"fmt"
	"strconv"
)

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a point of interest. Bookmarked places use their title as ID.
type Place struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
	ImageName   string      `json:"imageName"`
}

// PlaceDraft is a place that has not been assigned an identity yet.
type PlaceDraft struct {
	Title       string
	Description string
	Coordinates Coordinates
	ImageName   string
}

// Draft strips the identity from p.
func (p Place) Draft() PlaceDraft {
	return PlaceDraft{
		Title:       p.Title,
		Description: p.Description,
		Coordinates: p.Coordinates,
		ImageName:   p.ImageName,
	}
}

// WithID returns the place built from d with the given identity.
func (d PlaceDraft) WithID(id string) Place {
	return Place{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Coordinates: d.Coordinates,
		ImageName:   d.ImageName,
	}
}

// MapURL returns a Google Maps search link centred on the place.
func (p Place) MapURL() string {
	return "https://www.google.com/maps/search/?api=1&query=" +
		strconv.FormatFloat(p.Coordinates.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Coordinates.Longitude, 'f', -1, 64)
}

// ShareTitle is the subject line used when a place is shared.
func (p Place) ShareTitle() string {
	return fmt.Sprintf("Check out %s in New Zealand!", p.Title)
}

// ShareMessage is the plain-text body used when a place is shared.
func (p Place) ShareMessage() string {
	return fmt.Sprintf("%s\n\n%s\n\nView on map: %s", p.ShareTitle(), p.Description, p.MapURL())
}
