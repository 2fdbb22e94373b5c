package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ericfisherdev/skylands/internal/domain/model"
	"github.com/ericfisherdev/skylands/internal/domain/port/driven"
)

// SavedPlacesKey is the key under which the bookmark collection is stored.
const SavedPlacesKey = "saved_places"

var (
	// ErrDeserialization indicates the stored collection is not a valid place array.
	ErrDeserialization = errors.New("stored places could not be decoded")

	// ErrInvalidTitle indicates an empty title was used as a place identity.
	ErrInvalidTitle = errors.New("place title must not be empty")
)

// PlaceStore persists the user's bookmarked places as a single JSON array in a
// KVStore. Places are identified by title; the first save of a title wins.
//
// Every mutation is an unsynchronized read-modify-write of the whole
// collection. Two overlapping Save/Remove calls can both read the same prior
// collection, and the later write discards the earlier one's change. Callers
// must not issue overlapping mutations.
type PlaceStore struct {
	kv driven.KVStore
}

// NewPlaceStore creates a PlaceStore backed by kv.
func NewPlaceStore(kv driven.KVStore) *PlaceStore {
	return &PlaceStore{kv: kv}
}

// GetAll returns the stored places in insertion order. An absent collection
// yields an empty slice; an undecodable one yields ErrDeserialization.
func (s *PlaceStore) GetAll(ctx context.Context) ([]model.Place, error) {
	data, ok, err := s.kv.GetItem(ctx, SavedPlacesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", driven.ErrStorageUnavailable, SavedPlacesKey, err)
	}
	if !ok {
		return []model.Place{}, nil
	}

	var places []model.Place
	if err := json.Unmarshal([]byte(data), &places); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	if places == nil {
		places = []model.Place{}
	}
	return places, nil
}

// Save appends the draft with ID set to its title. If a place with the same
// title is already stored the call does nothing.
func (s *PlaceStore) Save(ctx context.Context, draft model.PlaceDraft) error {
	if err := validateTitle(draft.Title); err != nil {
		return err
	}

	existing, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	if indexByTitle(existing, draft.Title) >= 0 {
		return nil
	}

	return s.write(ctx, append(existing, draft.WithID(draft.Title)))
}

// Remove persists the collection without any place titled title. Removing an
// unknown title is not an error.
func (s *PlaceStore) Remove(ctx context.Context, title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	existing, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Place, 0, len(existing))
	for _, p := range existing {
		if p.Title != title {
			kept = append(kept, p)
		}
	}

	return s.write(ctx, kept)
}

// IsSaved reports whether a place titled title is stored.
func (s *PlaceStore) IsSaved(ctx context.Context, title string) (bool, error) {
	if err := validateTitle(title); err != nil {
		return false, err
	}

	existing, err := s.GetAll(ctx)
	if err != nil {
		return false, err
	}
	return indexByTitle(existing, title) >= 0, nil
}

func (s *PlaceStore) write(ctx context.Context, places []model.Place) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("encode places: %w", err)
	}

	if err := s.kv.SetItem(ctx, SavedPlacesKey, string(data)); err != nil {
		return fmt.Errorf("%w: write %s: %w", driven.ErrStorageUnavailable, SavedPlacesKey, err)
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidTitle
	}
	return nil
}

func indexByTitle(places []model.Place, title string) int {
	for i, p := range places {
		if p.Title == title {
			return i
		}
	}
	return -1
}
