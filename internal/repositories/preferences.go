package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// PreferenceRepository persists display preferences, one key per setting.
type PreferenceRepository struct {
	store Store
}

// NewPreferenceRepository creates a new PreferenceRepository backed by store
func NewPreferenceRepository(store Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// Load reads every setting, substituting defaults for missing or corrupt entries.
//
// The returned [models.Preferences] is always usable; the error joins every entry that could not be read.
func (r *PreferenceRepository) Load() (models.Preferences, error) {
	prefs := models.DefaultPreferences()
	var errs []error

	if raw, ok, err := r.store.Get(FontSettingsKey); err != nil {
		errs = append(errs, err)
	} else if ok {
		var font models.FontSettings
		if err := json.Unmarshal([]byte(raw), &font); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", shared.ErrCorruptEntry, FontSettingsKey, err))
		} else {
			prefs.Font = font.Normalize()
		}
	}

	if raw, ok, err := r.store.Get(AnimationKey); err != nil {
		errs = append(errs, err)
	} else if ok {
		if a, err := models.ParseAnimation(raw); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", shared.ErrCorruptEntry, AnimationKey, err))
		} else {
			prefs.Animation = a
		}
	}

	if raw, ok, err := r.store.Get(ThemeKey); err != nil {
		errs = append(errs, err)
	} else if ok {
		if th, err := models.ParseTheme(raw); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", shared.ErrCorruptEntry, ThemeKey, err))
		} else {
			prefs.Theme = th
		}
	}

	return prefs, errors.Join(errs...)
}

// Save writes every setting
func (r *PreferenceRepository) Save(prefs models.Preferences) error {
	return errors.Join(
		r.SaveFont(prefs.Font),
		r.SaveAnimation(prefs.Animation),
		r.SaveTheme(prefs.Theme),
	)
}

// SaveFont writes the font settings as a JSON object
func (r *PreferenceRepository) SaveFont(font models.FontSettings) error {
	data, err := json.Marshal(font)
	if err != nil {
		return fmt.Errorf("failed to encode font settings: %w", err)
	}
	return r.store.Set(FontSettingsKey, string(data))
}

func (r *PreferenceRepository) SaveAnimation(a models.Animation) error {
	return r.store.Set(AnimationKey, string(a))
}

func (r *PreferenceRepository) SaveTheme(t models.Theme) error {
	return r.store.Set(ThemeKey, string(t))
}
