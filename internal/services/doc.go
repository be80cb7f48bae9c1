// Package services defines the [Service] interface for lyrics providers and implements it for LRCLIB.
//
// # Query Client
//
// [LRCLibService] issues one GET {base}/search?q={query} per call and decodes the JSON array body into
// [models.Track] records, preserving server order. There is no retry, caching or pagination; the
// injected [http.Client] decides timeouts.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrInvalidInput] : blank query, no request issued
//   - [shared.ErrAPIRequest] : transport failure or non-2xx status
//   - [shared.ErrInvalidResponse] : body is not a JSON array of tracks
//
// An empty array is not an error; callers decide how to present "no matches".
//
// # Raw Access
//
// [APIService] returns undecoded responses for `lyrx api get`.
package services
