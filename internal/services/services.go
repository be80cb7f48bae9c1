// package services defines interface Service for querying lyrics HTTP APIs
//
// LRCLIB
package services

import (
	"context"

	"github.com/desertthunder/lyrx/internal/models"
)

// Service defines the interface for lyrics providers.
type Service interface {
	// Search issues one request for query and returns the matching records in server order.
	// An empty slice with a nil error means no matches.
	Search(ctx context.Context, query string) ([]models.Track, error)

	// Name returns the name of the service (e.g., "LRCLIB")
	Name() string
}
