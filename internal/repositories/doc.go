// Package repositories implements local persistence for favorites and display preferences.
//
// Everything is stored as string values under fixed keys in a [Store]. The SQLite-backed [SQLiteStore] keeps
// entries in the kv_entries table created by the embedded migrations; [MemoryStore] serves tests and acts as
// the fallback when no database can be opened.
//
// Key Implementations:
//   - [SQLiteStore] : kv_entries table with upsert semantics (last write wins)
//   - [MemoryStore] : mutex-guarded map
//   - [FavoriteRepository] : ordered favorites list as a JSON array under [FavoritesKey]
//   - [PreferenceRepository] : font settings, background animation and theme
//
// Missing or unparsable entries load as defaults. Load reports the corruption through an error wrapping
// [shared.ErrCorruptEntry] alongside the usable value so callers can log and continue.
package repositories
