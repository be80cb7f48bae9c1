package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// FavoriteRepository persists the favorites list as a JSON array of tracks.
//
// Order is insertion order; the repository does not deduplicate.
type FavoriteRepository struct {
	store Store
}

// NewFavoriteRepository creates a new FavoriteRepository backed by store
func NewFavoriteRepository(store Store) *FavoriteRepository {
	return &FavoriteRepository{store: store}
}

// Load returns the stored favorites.
//
// A missing entry yields an empty list. A corrupt entry yields an empty list together with an error wrapping
// [shared.ErrCorruptEntry].
func (r *FavoriteRepository) Load() ([]models.Track, error) {
	raw, ok, err := r.store.Get(FavoritesKey)
	if err != nil {
		return []models.Track{}, err
	}
	if !ok {
		return []models.Track{}, nil
	}

	var tracks []models.Track
	if err := json.Unmarshal([]byte(raw), &tracks); err != nil {
		return []models.Track{}, fmt.Errorf("%w: %s: %v", shared.ErrCorruptEntry, FavoritesKey, err)
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

// Save replaces the stored favorites with tracks
func (r *FavoriteRepository) Save(tracks []models.Track) error {
	if tracks == nil {
		tracks = []models.Track{}
	}

	data, err := json.Marshal(tracks)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	return r.store.Set(FavoritesKey, string(data))
}
