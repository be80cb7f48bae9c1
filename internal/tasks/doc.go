// Package tasks runs long lyrics operations with real-time progress reporting.
//
// # Core Operations
//
// [LyricsEngine] implements three operations:
//
//  1. [LyricsEngine.Lookup] : Resolve one query to its first search result
//     - Results are taken in server order with no ranking
//
//  2. [LyricsEngine.BulkExport] : Download lyrics for a list of queries
//     - Producer paced by a token-bucket limiter
//     - Worker pool writes .txt and, when available, .lrc files
//     - Writes export_manifest.json summarizing every query
//
//  3. [LyricsEngine.Dump] : Fetch raw API responses for a set of queries
//     - Non-2xx responses are recorded rather than aborting the run
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks
