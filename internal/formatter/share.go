package formatter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// SharedTrack identifies a track carried in a share link.
type SharedTrack struct {
	Track  string
	Artist string
	ID     int
}

// Query is the search used to resolve a share link: "<artist> <track>".
func (s SharedTrack) Query() string {
	return s.Artist + " " + s.Track
}

// BuildShareLink sets the track, artist and id query parameters on base.
//
// Other query parameters on base are replaced; path and fragment are kept.
func BuildShareLink(base string, track models.Track) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidShareLink, err)
	}

	params := url.Values{}
	params.Set("track", track.TrackName)
	params.Set("artist", track.ArtistName)
	params.Set("id", strconv.Itoa(track.ID))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// ParseShareLink decodes a share link built by [BuildShareLink].
//
// All three parameters must be present and id must be an integer.
func ParseShareLink(raw string) (SharedTrack, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return SharedTrack{}, fmt.Errorf("%w: %v", shared.ErrInvalidShareLink, err)
	}
	return ParseShareParams(u.Query())
}

// ParseShareParams decodes share-link query parameters.
func ParseShareParams(q url.Values) (SharedTrack, error) {
	track, artist, id := q.Get("track"), q.Get("artist"), q.Get("id")
	if track == "" || artist == "" || id == "" {
		return SharedTrack{}, fmt.Errorf("%w: track, artist and id are required", shared.ErrInvalidShareLink)
	}

	n, err := strconv.Atoi(id)
	if err != nil {
		return SharedTrack{}, fmt.Errorf("%w: id %q is not a number", shared.ErrInvalidShareLink, id)
	}

	return SharedTrack{Track: track, Artist: artist, ID: n}, nil
}
