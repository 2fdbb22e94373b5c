package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/skylands/internal/domain/model"
	"github.com/ericfisherdev/skylands/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockKVStore struct {
	items     map[string]string
	getErr    error
	setErr    error
	setCalls  int
	beforeSet func()
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{items: make(map[string]string)}
}

func (m *mockKVStore) GetItem(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *mockKVStore) SetItem(_ context.Context, key, value string) error {
	m.setCalls++
	if hook := m.beforeSet; hook != nil {
		m.beforeSet = nil
		hook()
	}
	if m.setErr != nil {
		return m.setErr
	}
	m.items[key] = value
	return nil
}

func skyTower() model.PlaceDraft {
	return model.PlaceDraft{
		Title:       "Sky Tower",
		Description: "A 328m observation tower.",
		Coordinates: model.Coordinates{Latitude: -36.84845, Longitude: 174.76219},
		ImageName:   "sky_tower",
	}
}

func hobbiton() model.PlaceDraft {
	return model.PlaceDraft{
		Title:       "Hobbiton Movie Set",
		Description: "A live Shire set.",
		Coordinates: model.Coordinates{Latitude: -37.85757, Longitude: 175.68056},
		ImageName:   "hobbiton",
	}
}

func TestPlaceStore_GetAllEmpty(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())

	places, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestPlaceStore_SaveRoundTrip(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, skyTower()))

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, skyTower().WithID("Sky Tower"), places[0])
	assert.Equal(t, "Sky Tower", places[0].ID)
}

func TestPlaceStore_SaveDuplicateKeepsFirst(t *testing.T) {
	kv := newMockKVStore()
	store := NewPlaceStore(kv)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, skyTower()))

	second := skyTower()
	second.Description = "different"
	require.NoError(t, store.Save(ctx, second))

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "A 328m observation tower.", places[0].Description)
	assert.Equal(t, 1, kv.setCalls, "duplicate save should not write")
}

func TestPlaceStore_SavePreservesInsertionOrder(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, hobbiton()))
	require.NoError(t, store.Save(ctx, skyTower()))

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Hobbiton Movie Set", places[0].Title)
	assert.Equal(t, "Sky Tower", places[1].Title)
}

func TestPlaceStore_SerializedFormat(t *testing.T) {
	kv := newMockKVStore()
	store := NewPlaceStore(kv)

	require.NoError(t, store.Save(context.Background(), skyTower()))

	assert.JSONEq(t, `[{
		"id": "Sky Tower",
		"title": "Sky Tower",
		"description": "A 328m observation tower.",
		"coordinates": {"latitude": -36.84845, "longitude": 174.76219},
		"imageName": "sky_tower"
	}]`, kv.items[SavedPlacesKey])
}

func TestPlaceStore_Remove(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, skyTower()))
	require.NoError(t, store.Save(ctx, hobbiton()))
	require.NoError(t, store.Remove(ctx, "Sky Tower"))

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Hobbiton Movie Set", places[0].Title)
}

func TestPlaceStore_RemoveNonexistent(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, skyTower()))
	require.NoError(t, store.Remove(ctx, "Atlantis"), "removing unknown title should not error")

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, places, 1)
}

func TestPlaceStore_RemoveAllMatchingTitles(t *testing.T) {
	kv := newMockKVStore()
	kv.items[SavedPlacesKey] = `[{"id":"a","title":"Dup"},{"id":"b","title":"Keep"},{"id":"c","title":"Dup"}]`
	store := NewPlaceStore(kv)
	ctx := context.Background()

	require.NoError(t, store.Remove(ctx, "Dup"))

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Keep", places[0].Title)
}

func TestPlaceStore_IsSaved(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())
	ctx := context.Background()

	saved, err := store.IsSaved(ctx, "Sky Tower")
	require.NoError(t, err)
	assert.False(t, saved)

	require.NoError(t, store.Save(ctx, skyTower()))
	saved, err = store.IsSaved(ctx, "Sky Tower")
	require.NoError(t, err)
	assert.True(t, saved)

	require.NoError(t, store.Remove(ctx, "Sky Tower"))
	saved, err = store.IsSaved(ctx, "Sky Tower")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestPlaceStore_Scenario(t *testing.T) {
	store := NewPlaceStore(newMockKVStore())
	ctx := context.Background()

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, places)

	require.NoError(t, store.Save(ctx, model.PlaceDraft{Title: "Sky Tower", Description: "original"}))
	places, err = store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Sky Tower", places[0].ID)

	require.NoError(t, store.Save(ctx, model.PlaceDraft{Title: "Sky Tower", Description: "different"}))
	places, err = store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "original", places[0].Description)

	require.NoError(t, store.Remove(ctx, "Sky Tower"))
	places, err = store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestPlaceStore_NullCollectionIsEmpty(t *testing.T) {
	kv := newMockKVStore()
	kv.items[SavedPlacesKey] = "null"

	places, err := NewPlaceStore(kv).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestPlaceStore_CorruptCollection(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "object instead of array", data: `{"title":"Sky Tower"}`},
		{name: "wrong field type", data: `[{"title": 42}]`},
		{name: "empty string", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMockKVStore()
			kv.items[SavedPlacesKey] = tt.data
			store := NewPlaceStore(kv)
			ctx := context.Background()

			_, err := store.GetAll(ctx)
			require.ErrorIs(t, err, ErrDeserialization)

			err = store.Save(ctx, skyTower())
			require.ErrorIs(t, err, ErrDeserialization)
			assert.Equal(t, 0, kv.setCalls, "corrupt collection must not be overwritten")
		})
	}
}

func TestPlaceStore_ReadFailure(t *testing.T) {
	kv := newMockKVStore()
	kv.getErr = errors.New("disk on fire")
	store := NewPlaceStore(kv)
	ctx := context.Background()

	_, err := store.GetAll(ctx)
	require.ErrorIs(t, err, driven.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "disk on fire")

	_, err = store.IsSaved(ctx, "Sky Tower")
	require.ErrorIs(t, err, driven.ErrStorageUnavailable)

	err = store.Remove(ctx, "Sky Tower")
	require.ErrorIs(t, err, driven.ErrStorageUnavailable)
}

func TestPlaceStore_WriteFailure(t *testing.T) {
	kv := newMockKVStore()
	kv.setErr = errors.New("quota exceeded")
	store := NewPlaceStore(kv)

	err := store.Save(context.Background(), skyTower())
	require.ErrorIs(t, err, driven.ErrStorageUnavailable)
	assert.Equal(t, 1, kv.setCalls, "write must not be retried")
}

func TestPlaceStore_InvalidTitle(t *testing.T) {
	kv := newMockKVStore()
	store := NewPlaceStore(kv)
	ctx := context.Background()

	for _, title := range []string{"", "   "} {
		err := store.Save(ctx, model.PlaceDraft{Title: title})
		assert.ErrorIs(t, err, ErrInvalidTitle)

		err = store.Remove(ctx, title)
		assert.ErrorIs(t, err, ErrInvalidTitle)

		_, err = store.IsSaved(ctx, title)
		assert.ErrorIs(t, err, ErrInvalidTitle)
	}
	assert.Equal(t, 0, kv.setCalls)
}

// Overlapping mutations are not serialized: the inner Save reads the same
// empty collection as the outer one, and the outer write discards it.
func TestPlaceStore_OverlappingSavesLoseUpdate(t *testing.T) {
	kv := newMockKVStore()
	store := NewPlaceStore(kv)
	ctx := context.Background()

	kv.beforeSet = func() {
		require.NoError(t, store.Save(ctx, hobbiton()))
	}
	require.NoError(t, store.Save(ctx, skyTower()))

	places, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Sky Tower", places[0].Title)
}
