package domain

import "context"

const (
	// SearchLimit is the number of nearest neighbours requested per query vector.
	SearchLimit = 10
	// playbackParams is appended to every advertisement link so it autoplays muted.
	playbackParams = "&autoplay=1&mute=1"
)

// AdvertisementMatch is one nearest-neighbour hit projected to {product, link}.
type AdvertisementMatch struct {
	Product    string
	VideoLink  string
	Similarity float64
}

// AdvertisementIndex runs nearest-neighbour searches against the advertisement catalog.
// Implementations must be safe for concurrent use and return matches ordered by
// descending similarity.
type AdvertisementIndex interface {
	SearchAdvertisements(ctx context.Context, vector []float64, limit int) ([]AdvertisementMatch, error)
}

// PlaybackURL returns the playable url for the match, or "" when the match has no link.
func (m AdvertisementMatch) PlaybackURL() string {
	if m.VideoLink == "" {
		return ""
	}
	return m.VideoLink + playbackParams
}
