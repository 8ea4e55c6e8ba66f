package portfolio

import (
	"fmt"
	"regexp"

	"dconn.dev/showreel/internal/models"
)

// DefaultPlayerHost is the embed host used when none is configured
const DefaultPlayerHost = "player.vimeo.com"

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Player builds embed URLs for an external video player
type Player struct {
	Host string
}

// NewPlayer returns a Player for host, falling back to DefaultPlayerHost
func NewPlayer(host string) Player {
	if host == "" {
		host = DefaultPlayerHost
	}
	return Player{Host: host}
}

// PreviewURL returns the inline preview embed URL for a video
func (p Player) PreviewURL(videoID string) string {
	return "https://" + p.Host + "/video/" + videoID
}

// AutoplayURL returns the embed URL used by the modal
func (p Player) AutoplayURL(videoID string) string {
	return p.PreviewURL(videoID) + "?autoplay=1"
}

// ValidateVideoID rejects ids that would change the shape of an embed URL.
// The URL builders insert ids verbatim, so every id is checked here first.
func ValidateVideoID(videoID string) error {
	if !videoIDPattern.MatchString(videoID) {
		return fmt.Errorf("%w: %q", ErrInvalidVideoID, videoID)
	}
	return nil
}

// ValidateEntries checks every entry's video id
func ValidateEntries(entries []models.PortfolioEntry) error {
	for i, e := range entries {
		if err := ValidateVideoID(e.VideoID); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.Title, err)
		}
	}
	return nil
}
