package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrInvalidResponse    = fmt.Errorf("invalid API response")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTrackNotFound      = fmt.Errorf("track not found")
	ErrNoMatches          = fmt.Errorf("no matches")

	// Persistence errors
	ErrCorruptEntry = fmt.Errorf("corrupt stored entry")

	// Export errors
	ErrNoTrackSelected   = fmt.Errorf("no track selected")
	ErrSyncedUnavailable = fmt.Errorf("synced lyrics unavailable")
	ErrLyricsUnavailable = fmt.Errorf("lyrics unavailable")
	ErrInvalidShareLink  = fmt.Errorf("invalid share link")
	ErrUnsupportedFormat = fmt.Errorf("unsupported format")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
