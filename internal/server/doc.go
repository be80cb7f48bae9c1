// Package server resolves lyrx share links over HTTP and exposes a small JSON API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Handlers
//
//   - [ShareHandler] : GET / with track, artist and id parameters returns that track's lyrics as plain text
//   - [SearchHandler] : GET /api/search?q= returns the search results as JSON, in server order
//   - [FavoritesHandler] : GET /api/favorites returns the locally saved favorites (json, yaml, csv, md or txt)
//
// # Middleware
//
// [RequestID] tags every request with a UUID (X-Request-ID), [Logger] logs method, path, status and latency,
// and [Recover] turns handler panics into 500 responses.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
