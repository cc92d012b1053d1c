package domain

import "github.com/google/uuid"

// DefaultVideoURL is returned when the customer or its vectors could not be obtained.
const DefaultVideoURL = "https://www.youtube.com/watch?v=default_video&autoplay=1&mute=1"

// PipelineResult is the outcome of one recommendation run for one customer.
//
// PlayAd is the only authoritative signal: when false, AdURL and Product hold a
// fallback and Score may still carry the rejected value.
type PipelineResult struct {
	RunID      uuid.UUID
	CustomerID string
	Approach   Approach
	Interests  UserInterests
	AdURL      string
	Product    string
	Score      float64
	PlayAd     bool
	Shortlist  []Recommendation
	// Rejected holds the best match when it failed the similarity threshold.
	Rejected *Recommendation
}

// NewPipelineResult creates a fully populated default result.
func NewPipelineResult(runID uuid.UUID, customerID string, approach Approach) PipelineResult {
	return PipelineResult{
		RunID:      runID,
		CustomerID: customerID,
		Approach:   approach,
		Shortlist:  []Recommendation{},
	}
}

// ApplySelection records the top match and shortlist. PlayAd stays false until
// the result is validated against the threshold.
func (r *PipelineResult) ApplySelection(sel Selection) {
	r.AdURL = sel.Top.URL
	r.Product = sel.Top.Product
	r.Score = sel.Top.Score
	r.PlayAd = false
	r.Shortlist = sel.Shortlist
}

// ApplyErrorFallback turns the result into the "customer or vectors missing" outcome.
func (r *PipelineResult) ApplyErrorFallback() {
	r.AdURL = DefaultVideoURL
	r.Product = ""
	r.Score = 0
	r.PlayAd = false
	r.Shortlist = []Recommendation{}
	r.Rejected = nil
}

// ApproachComparison holds the outcome of both approaches for the same customer.
type ApproachComparison struct {
	CustomerID  string
	Interests   UserInterests
	Selection   PipelineResult
	Aggregation PipelineResult
}
