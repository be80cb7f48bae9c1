package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	tu "github.com/desertthunder/lyrx/internal/testing"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	require.NoError(t, err, "failed to create test database")

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// failingStore returns err from every call
type failingStore struct{ err error }

func (f failingStore) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(string, string) error         { return f.err }
func (f failingStore) Delete(string) error              { return f.err }

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"SQLite": func(t *testing.T) Store { return NewSQLiteStore(setupTestDB(t)) },
		"Memory": func(t *testing.T) Store { return NewMemoryStore() },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("Get Missing", func(t *testing.T) {
				s := newStore(t)

				v, ok, err := s.Get("missing")
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Empty(t, v)
			})

			t.Run("Set and Get", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.Set(ThemeKey, "light"))
				v, ok, err := s.Get(ThemeKey)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "light", v)
			})

			t.Run("Last Write Wins", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.Set(ThemeKey, "light"))
				require.NoError(t, s.Set(ThemeKey, "dark"))
				v, _, err := s.Get(ThemeKey)
				require.NoError(t, err)
				assert.Equal(t, "dark", v)
			})

			t.Run("Delete", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.Set(AnimationKey, "stars"))
				require.NoError(t, s.Delete(AnimationKey))
				require.NoError(t, s.Delete(AnimationKey), "deleting a missing key should succeed")

				_, ok, err := s.Get(AnimationKey)
				require.NoError(t, err)
				assert.False(t, ok)
			})
		})
	}

	t.Run("Keys", func(t *testing.T) {
		s := NewSQLiteStore(setupTestDB(t))
		m := NewMemoryStore()
		for _, k := range []string{ThemeKey, FavoritesKey, AnimationKey} {
			require.NoError(t, s.Set(k, "x"))
			require.NoError(t, m.Set(k, "x"))
		}

		want := []string{AnimationKey, FavoritesKey, ThemeKey}
		got, err := s.Keys()
		require.NoError(t, err)
		assert.Equal(t, want, got)

		got, err = m.Keys()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("SQLite Closed Database", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewSQLiteStore(db)
		db.Close()

		_, _, err := s.Get(ThemeKey)
		assert.Error(t, err)
		assert.Error(t, s.Set(ThemeKey, "dark"))
		assert.Error(t, s.Delete(ThemeKey))
	})
}

func TestFavoriteRepository(t *testing.T) {
	t.Run("Load Missing", func(t *testing.T) {
		repo := NewFavoriteRepository(NewMemoryStore())

		tracks, err := repo.Load()
		require.NoError(t, err)
		assert.NotNil(t, tracks)
		assert.Empty(t, tracks)
	})

	t.Run("Save and Load Keeps Order", func(t *testing.T) {
		repo := NewFavoriteRepository(NewSQLiteStore(setupTestDB(t)))
		want := []models.Track{
			tu.NewTrack(9, "Queen", "Bohemian Rhapsody", 354, "Is this the real life?", "[00:00.10] Is this"),
			tu.NewTrack(2, "Billy Joel", "Piano Man", 339, "", ""),
			tu.NewTrack(5, "Michael Jackson", "Billie Jean", 294, "She was more like", ""),
		}

		require.NoError(t, repo.Save(want))
		got, err := repo.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Stored As JSON Array", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewFavoriteRepository(store)

		require.NoError(t, repo.Save(nil))
		raw, ok, _ := store.Get(FavoritesKey)
		require.True(t, ok)
		assert.Equal(t, "[]", raw)

		require.NoError(t, repo.Save([]models.Track{tu.NewTrack(1, "A", "B", 60, "", "")}))
		raw, _, _ = store.Get(FavoritesKey)
		assert.JSONEq(t, `[{"id":1,"trackName":"B","artistName":"A","albumName":"B","duration":60,"plainLyrics":null,"syncedLyrics":null}]`, raw)
	})

	t.Run("Corrupt Entry", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(FavoritesKey, "{not json"))

		tracks, err := NewFavoriteRepository(store).Load()
		assert.ErrorIs(t, err, shared.ErrCorruptEntry)
		assert.Empty(t, tracks)
	})

	t.Run("Store Failure", func(t *testing.T) {
		boom := errors.New("disk full")
		repo := NewFavoriteRepository(failingStore{err: boom})

		_, err := repo.Load()
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, repo.Save(nil), boom)
	})
}

func TestPreferenceRepository(t *testing.T) {
	t.Run("Defaults When Missing", func(t *testing.T) {
		prefs, err := NewPreferenceRepository(NewMemoryStore()).Load()
		require.NoError(t, err)
		assert.Equal(t, models.DefaultPreferences(), prefs)
	})

	t.Run("Save and Load", func(t *testing.T) {
		repo := NewPreferenceRepository(NewSQLiteStore(setupTestDB(t)))
		want := models.Preferences{
			Font: models.FontSettings{
				Size:       models.FontSize2XL,
				Family:     models.FontFamilyMono,
				LineHeight: models.LineHeightTight,
			},
			Animation: models.AnimationStars,
			Theme:     models.ThemeLight,
		}

		require.NoError(t, repo.Save(want))
		got, err := repo.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Stored Formats", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewPreferenceRepository(store)
		require.NoError(t, repo.Save(models.DefaultPreferences()))

		raw, _, _ := store.Get(FontSettingsKey)
		assert.JSONEq(t, `{"size":"base","family":"default","lineHeight":"relaxed"}`, raw)
		raw, _, _ = store.Get(AnimationKey)
		assert.Equal(t, "waves", raw)
		raw, _, _ = store.Get(ThemeKey)
		assert.Equal(t, "dark", raw)
	})

	t.Run("Unknown Font Fields Normalize", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(FontSettingsKey, `{"size":"huge","family":"serif"}`))

		prefs, err := NewPreferenceRepository(store).Load()
		require.NoError(t, err)
		assert.Equal(t, models.FontSizeBase, prefs.Font.Size)
		assert.Equal(t, models.FontFamilySerif, prefs.Font.Family)
		assert.Equal(t, models.LineHeightRelaxed, prefs.Font.LineHeight)
	})

	t.Run("Corrupt Entries Fall Back", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(FontSettingsKey, "nope"))
		require.NoError(t, store.Set(AnimationKey, "fireworks"))
		require.NoError(t, store.Set(ThemeKey, "light"))

		prefs, err := NewPreferenceRepository(store).Load()
		assert.ErrorIs(t, err, shared.ErrCorruptEntry)
		assert.Equal(t, models.DefaultFontSettings(), prefs.Font)
		assert.Equal(t, models.DefaultAnimation, prefs.Animation)
		assert.Equal(t, models.ThemeLight, prefs.Theme)
	})

	t.Run("Store Failure", func(t *testing.T) {
		boom := errors.New("locked")
		repo := NewPreferenceRepository(failingStore{err: boom})

		prefs, err := repo.Load()
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, models.DefaultPreferences(), prefs)
		assert.ErrorIs(t, repo.Save(prefs), boom)
	})
}
