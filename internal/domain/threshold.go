package domain

const (
	// SimilarityThreshold is the inclusive minimum score for an advertisement to play.
	SimilarityThreshold = 0.7
	// DefaultAdURL is played when the best match scores below SimilarityThreshold.
	DefaultAdURL = "https://www.youtube.com/watch?v=default_ad&autoplay=1&mute=1"
	// DefaultProduct is the product reported alongside DefaultAdURL.
	DefaultProduct = "Generic Product"
)

// FallbackScorePolicy decides what score a low-confidence result reports.
type FallbackScorePolicy int

const (
	// FallbackScore_RESET reports a zero score once the fallback ad is substituted.
	FallbackScore_RESET FallbackScorePolicy = iota
	// FallbackScore_KEEP keeps the rejected match's score for side-by-side comparison.
	FallbackScore_KEEP
)

// MeetsThreshold reports whether a similarity score qualifies for playback.
func MeetsThreshold(score float64) bool {
	return score >= SimilarityThreshold
}

// ValidateThreshold gates the chosen match of the result. A qualifying match is
// marked playable and left untouched. Otherwise the fallback ad replaces the
// chosen url and product, the losing match is kept on Rejected, and the score is
// kept or reset according to the policy.
func ValidateThreshold(result *PipelineResult, policy FallbackScorePolicy) {
	if MeetsThreshold(result.Score) {
		result.PlayAd = true
		return
	}

	rejected := Recommendation{
		URL:     result.AdURL,
		Product: result.Product,
		Score:   result.Score,
	}
	result.Rejected = &rejected
	result.PlayAd = false
	result.AdURL = DefaultAdURL
	result.Product = DefaultProduct
	if policy == FallbackScore_RESET {
		result.Score = 0
	}
}
